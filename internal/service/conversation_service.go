package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/repository"
)

// titleLength is how many characters of the first user message become the title.
const titleLength = 30

// ConversationService owns conversations, their messages and the active
// conversation pointer.
type ConversationService struct {
	ws                  *Workspace
	validateFolderMoves bool
}

// NewConversationService creates the service. With validateFolderMoves set,
// MoveToFolder rejects folder ids that do not exist; otherwise any id is
// stored as given.
func NewConversationService(ws *Workspace, validateFolderMoves bool) *ConversationService {
	return &ConversationService{ws: ws, validateFolderMoves: validateFolderMoves}
}

// Create starts an empty conversation and makes it the active one.
func (s *ConversationService) Create(ctx context.Context) (*model.Conversation, error) {
	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	now := s.ws.timestamp()
	conv := &model.Conversation{
		ID:        newID(prefixConversation),
		Title:     model.DefaultConversationTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []model.Message{},
	}

	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		if err := putConversation(ctx, tx, conv); err != nil {
			return err
		}
		return setActive(ctx, tx, &conv.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("could not create conversation: %w", err)
	}

	slog.InfoContext(ctx, "Created conversation", "conversation_id", conv.ID)
	s.ws.publish(ctx, conv, true)
	return conv, nil
}

func (s *ConversationService) Get(ctx context.Context, id string) (*model.Conversation, error) {
	var conv *model.Conversation
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		var err error
		conv, err = getConversation(ctx, tx, id)
		return err
	})
	return conv, err
}

// List returns every conversation, most recently updated first.
func (s *ConversationService) List(ctx context.Context) ([]*model.Conversation, error) {
	var out []*model.Conversation
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		all, err := repository.ListJSON[model.Conversation](ctx, tx, repository.Conversations)
		if err != nil {
			return err
		}
		out = make([]*model.Conversation, 0, len(all))
		for _, c := range all {
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not list conversations: %w", err)
	}
	sortByUpdated(out)
	return out, nil
}

// Append adds msg to the end of the conversation. The first user message ever
// appended also becomes the title. Missing ids and timestamps are filled in.
func (s *ConversationService) Append(ctx context.Context, id string, msg model.Message) (*model.Conversation, error) {
	if msg.Role != model.RoleUser && msg.Role != model.RoleAssistant {
		return nil, fmt.Errorf("%w: unknown message role %q", app_errors.ErrValidation, msg.Role)
	}

	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	var conv *model.Conversation
	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		var err error
		conv, err = getConversation(ctx, tx, id)
		if err != nil {
			return err
		}

		if msg.ID == "" {
			msg.ID = newID(prefixMessage)
		}
		if msg.Timestamp.IsZero() {
			msg.Timestamp = s.ws.timestamp()
		}
		if msg.Role == model.RoleUser && conv.UserMessageCount() == 0 {
			conv.Title = deriveTitle(msg.Content)
		}
		conv.Messages = append(conv.Messages, msg)
		conv.UpdatedAt = s.ws.touch(conv.UpdatedAt)
		return putConversation(ctx, tx, conv)
	})
	if err != nil {
		return nil, err
	}

	s.ws.publish(ctx, conv, false)
	return conv, nil
}

// deriveTitle keeps the first titleLength characters of content.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleLength {
		return content
	}
	return string(runes[:titleLength]) + "..."
}

// mutate loads one conversation, applies fn, refreshes updated_at and saves it.
func (s *ConversationService) mutate(ctx context.Context, id string, fn func(tx repository.Tx, conv *model.Conversation) error) (*model.Conversation, error) {
	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	var conv *model.Conversation
	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		var err error
		conv, err = getConversation(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(tx, conv); err != nil {
			return err
		}
		conv.UpdatedAt = s.ws.touch(conv.UpdatedAt)
		return putConversation(ctx, tx, conv)
	})
	if err != nil {
		return nil, err
	}

	s.ws.publish(ctx, conv, false)
	return conv, nil
}

func (s *ConversationService) Rename(ctx context.Context, id, title string) (*model.Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	return s.mutate(ctx, id, func(_ repository.Tx, conv *model.Conversation) error {
		conv.Title = title
		return nil
	})
}

func (s *ConversationService) ToggleFavorite(ctx context.Context, id string) (*model.Conversation, error) {
	return s.mutate(ctx, id, func(_ repository.Tx, conv *model.Conversation) error {
		conv.IsFavorite = !conv.IsFavorite
		return nil
	})
}

// MoveToFolder files the conversation under folderID; nil or "" removes it
// from its folder.
func (s *ConversationService) MoveToFolder(ctx context.Context, id string, folderID *string) (*model.Conversation, error) {
	if folderID != nil && *folderID == "" {
		folderID = nil
	}
	return s.mutate(ctx, id, func(tx repository.Tx, conv *model.Conversation) error {
		if folderID != nil && s.validateFolderMoves {
			if _, err := tx.Get(ctx, repository.Folders, *folderID); err != nil {
				return notFound(err, "folder", *folderID)
			}
		}
		conv.FolderID = folderID
		return nil
	})
}

// RateMessage sets the rating of an assistant message. Giving the same rating
// again clears it.
func (s *ConversationService) RateMessage(ctx context.Context, id, messageID, rating string) (*model.Conversation, error) {
	if rating != model.RatingUp && rating != model.RatingDown {
		return nil, fmt.Errorf("%w: rating must be %q or %q", app_errors.ErrValidation, model.RatingUp, model.RatingDown)
	}
	return s.mutate(ctx, id, func(_ repository.Tx, conv *model.Conversation) error {
		for i := range conv.Messages {
			m := &conv.Messages[i]
			if m.ID != messageID {
				continue
			}
			if m.Role != model.RoleAssistant {
				return fmt.Errorf("%w: only assistant messages can be rated", app_errors.ErrValidation)
			}
			if m.Rating != nil && *m.Rating == rating {
				m.Rating = nil
			} else {
				r := rating
				m.Rating = &r
			}
			return nil
		}
		return fmt.Errorf("%w: message %s", app_errors.ErrNotFound, messageID)
	})
}

// Delete removes the conversation and clears the active pointer if it pointed at it.
func (s *ConversationService) Delete(ctx context.Context, id string) error {
	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	wasActive := false
	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		if err := tx.Delete(ctx, repository.Conversations, id); err != nil {
			return notFound(err, "conversation", id)
		}
		settings, err := loadSettings(ctx, tx)
		if err != nil {
			return err
		}
		if settings.LastConversationID != nil && *settings.LastConversationID == id {
			wasActive = true
			return setActive(ctx, tx, nil)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Deleted conversation", "conversation_id", id)
	s.ws.publish(ctx, nil, wasActive)
	return nil
}

// Select makes the conversation the active one and remembers it across restarts.
func (s *ConversationService) Select(ctx context.Context, id string) (*model.Conversation, error) {
	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	var conv *model.Conversation
	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		var err error
		conv, err = getConversation(ctx, tx, id)
		if err != nil {
			return err
		}
		return setActive(ctx, tx, &conv.ID)
	})
	if err != nil {
		return nil, err
	}

	s.ws.publish(ctx, conv, true)
	return conv, nil
}

// Active returns the active conversation, or nil when there is none.
func (s *ConversationService) Active(ctx context.Context) (*model.Conversation, error) {
	var conv *model.Conversation
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		settings, err := loadSettings(ctx, tx)
		if err != nil {
			return err
		}
		if settings.LastConversationID == nil {
			return nil
		}
		conv, err = getConversation(ctx, tx, *settings.LastConversationID)
		if err != nil && !isNotFound(err) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Search matches query case-insensitively against titles and message bodies.
// A blank query is not a search: active is false and no results are returned.
func (s *ConversationService) Search(ctx context.Context, query string) (results []*model.Conversation, active bool, err error) {
	if strings.TrimSpace(query) == "" {
		return nil, false, nil
	}
	q := strings.ToLower(query)

	all, err := s.List(ctx)
	if err != nil {
		return nil, true, err
	}
	results = make([]*model.Conversation, 0)
	for _, c := range all {
		if matches(c, q) {
			results = append(results, c)
		}
	}
	return results, true, nil
}

func matches(c *model.Conversation, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(c.Title), lowerQuery) {
		return true
	}
	for _, m := range c.Messages {
		if strings.Contains(strings.ToLower(m.Content), lowerQuery) {
			return true
		}
	}
	return false
}

// Sidebar returns folders by order and conversations by recency plus the
// active id.
func (s *ConversationService) Sidebar(ctx context.Context) (*model.Sidebar, error) {
	var sb *model.Sidebar
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		var err error
		sb, err = buildSidebar(ctx, tx)
		return err
	})
	return sb, err
}
