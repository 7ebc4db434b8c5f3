package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"multi-ai/backend/internal/dispatch"
	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/model"
)

// Dispatcher fans a history out to providers; *dispatch.Engine implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, providers []string, history []model.Message, onEach dispatch.Sink) []dispatch.Result
}

// SendRequest is one user turn addressed to a set of providers.
type SendRequest struct {
	ConversationID string   `json:"conversation_id"`
	Content        string   `json:"content" validate:"required" example:"Compare Go and Rust error handling"`
	Providers      []string `json:"providers" validate:"required,min=1,dive,required" example:"claude,gemini"`
}

// TurnEvent is emitted once per provider as soon as its answer is stored.
type TurnEvent struct {
	ConversationID string        `json:"conversation_id"`
	Message        model.Message `json:"message"`
	ErrorCode      string        `json:"error_code,omitempty"`
}

// ChatService runs a turn: it stores the user message, dispatches it and
// stores one assistant message per provider. It tracks which conversations
// have a dispatch in flight; the engine itself holds no such state.
type ChatService struct {
	conversations *ConversationService
	dispatcher    Dispatcher

	mu       sync.Mutex
	inflight map[string]bool
}

func NewChatService(conversations *ConversationService, dispatcher Dispatcher) *ChatService {
	return &ChatService{
		conversations: conversations,
		dispatcher:    dispatcher,
		inflight:      make(map[string]bool),
	}
}

func (s *ChatService) acquire(conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[conversationID] {
		return fmt.Errorf("%w: conversation %s is already waiting for responses", app_errors.ErrConflict, conversationID)
	}
	s.inflight[conversationID] = true
	return nil
}

func (s *ChatService) release(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, conversationID)
}

// Busy reports whether a dispatch is running for the conversation.
func (s *ChatService) Busy(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[conversationID]
}

// Send stores the user message, dispatches it to every requested provider and
// returns the conversation once all answers are stored. If an answer cannot be
// stored the remaining results are drained and the store error is returned. onEach (may be nil)
// sees each answer in completion order. An empty ConversationID starts a new
// conversation.
func (s *ChatService) Send(ctx context.Context, req *SendRequest, onEach func(TurnEvent)) (*model.Conversation, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", app_errors.ErrValidation)
	}
	if len(req.Providers) == 0 {
		return nil, fmt.Errorf("%w: select at least one provider", app_errors.ErrValidation)
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conv, err := s.conversations.Create(ctx)
		if err != nil {
			return nil, err
		}
		conversationID = conv.ID
	}

	if err := s.acquire(conversationID); err != nil {
		return nil, err
	}
	defer s.release(conversationID)

	conv, err := s.conversations.Append(ctx, conversationID, model.Message{
		Role:    model.RoleUser,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, conv, req.Providers, onEach)
}

// Retry asks a single provider again with the current history, typically
// after its previous answer was an error.
func (s *ChatService) Retry(ctx context.Context, conversationID, provider string, onEach func(TurnEvent)) (*model.Conversation, error) {
	if provider == "" {
		return nil, fmt.Errorf("%w: provider is required", app_errors.ErrValidation)
	}

	if err := s.acquire(conversationID); err != nil {
		return nil, err
	}
	defer s.release(conversationID)

	conv, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return s.dispatch(ctx, conv, []string{provider}, onEach)
}

func (s *ChatService) dispatch(ctx context.Context, conv *model.Conversation, providers []string, onEach func(TurnEvent)) (*model.Conversation, error) {
	// Answers are stored even if the caller goes away mid-dispatch.
	storeCtx := context.WithoutCancel(ctx)
	history := conv.Messages
	latest := conv
	var storeErr error

	slog.InfoContext(ctx, "Dispatching turn", "conversation_id", conv.ID, "providers", providers)

	s.dispatcher.Dispatch(ctx, providers, history, func(r dispatch.Result) {
		if storeErr != nil {
			return
		}
		msg := resultMessage(r)
		updated, err := s.conversations.Append(storeCtx, conv.ID, msg)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to store provider answer", "conversation_id", conv.ID, "provider", r.Provider, "error", err)
			storeErr = fmt.Errorf("could not store answer from %s: %w", r.Provider, err)
			return
		}
		latest = updated
		stored := updated.Messages[len(updated.Messages)-1]

		if r.OK() {
			slog.InfoContext(ctx, "Provider answered", "conversation_id", conv.ID, "provider", r.Provider, "latency_ms", r.LatencyMs)
		} else {
			slog.WarnContext(ctx, "Provider failed", "conversation_id", conv.ID, "provider", r.Provider, "error", r.Err)
		}
		if onEach != nil {
			onEach(TurnEvent{ConversationID: conv.ID, Message: stored, ErrorCode: r.ErrorCode})
		}
	})

	if storeErr != nil {
		return nil, storeErr
	}
	return latest, nil
}

// resultMessage turns a dispatch result into an assistant message; failures
// carry the classified message as content.
func resultMessage(r dispatch.Result) model.Message {
	latency := r.LatencyMs
	msg := model.Message{
		Role:      model.RoleAssistant,
		Provider:  r.Provider,
		Content:   r.Content,
		LatencyMs: &latency,
	}
	if !r.OK() {
		msg.Content = r.Error
		msg.IsError = true
	}
	return msg
}
