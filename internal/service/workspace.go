package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/repository"
)

// settingsKey is the single record of the settings table.
const settingsKey = "app"

// Id prefixes by entity kind.
const (
	prefixConversation = "conv_"
	prefixMessage      = "msg_"
	prefixFolder       = "folder_"
	prefixTemplate     = "tmpl_"
)

// Observer receives collaborator callbacks after every visible state change.
// Implementations must not call back into the services.
type Observer interface {
	// ConversationChanged reports the conversation now in focus; nil means
	// the active conversation was removed.
	ConversationChanged(conv *model.Conversation)
	SidebarUpdated(folders []*model.Folder, conversations []*model.Conversation, activeID *string)
}

type nopObserver struct{}

func (nopObserver) ConversationChanged(*model.Conversation) {}
func (nopObserver) SidebarUpdated([]*model.Folder, []*model.Conversation, *string) {}

// Workspace is the state shared by the store services: the repository, the
// writer lock and the observer. All services built on the same Workspace
// serialize their writes through it.
type Workspace struct {
	repo     repository.Repository
	mu       sync.Mutex
	observer Observer
	now      func() time.Time
}

type WorkspaceOption func(*Workspace)

// WithObserver registers the collaborator callback sink.
func WithObserver(o Observer) WorkspaceOption {
	return func(w *Workspace) {
		if o != nil {
			w.observer = o
		}
	}
}

// WithClock overrides the wall clock, mostly for tests.
func WithClock(now func() time.Time) WorkspaceOption {
	return func(w *Workspace) { w.now = now }
}

func NewWorkspace(repo repository.Repository, opts ...WorkspaceOption) *Workspace {
	w := &Workspace{repo: repo, observer: nopObserver{}, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}

func (w *Workspace) timestamp() time.Time {
	return w.now().UTC().Truncate(time.Millisecond)
}

// touch returns a modification time strictly after prev.
func (w *Workspace) touch(prev time.Time) time.Time {
	t := w.timestamp()
	if !t.After(prev) {
		t = prev.Add(time.Millisecond)
	}
	return t
}

// notFound converts a repository miss into the application sentinel and wraps
// anything else as an internal failure.
func notFound(err error, kind, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s %s", app_errors.ErrNotFound, kind, id)
	}
	return fmt.Errorf("could not load %s %s: %w", kind, id, err)
}

func getConversation(ctx context.Context, tx repository.Tx, id string) (*model.Conversation, error) {
	conv, err := repository.GetJSON[model.Conversation](ctx, tx, repository.Conversations, id)
	if err != nil {
		return nil, notFound(err, "conversation", id)
	}
	return conv, nil
}

func putConversation(ctx context.Context, tx repository.Tx, conv *model.Conversation) error {
	return repository.PutJSON(ctx, tx, repository.Conversations, conv.ID, conv)
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() *model.Settings {
	return &model.Settings{
		APIKeys:          map[string]string{},
		Theme:            "dark",
		DefaultProviders: []string{"claude", "gemini", "chatgpt"},
	}
}

// loadSettings merges the stored record over the defaults.
func loadSettings(ctx context.Context, tx repository.Tx) (*model.Settings, error) {
	settings := DefaultSettings()
	stored, err := repository.GetJSON[model.Settings](ctx, tx, repository.Settings, settingsKey)
	if errors.Is(err, repository.ErrNotFound) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load settings: %w", err)
	}
	if stored.APIKeys != nil {
		settings.APIKeys = stored.APIKeys
	}
	if stored.Theme != "" {
		settings.Theme = stored.Theme
	}
	if stored.DefaultProviders != nil {
		settings.DefaultProviders = stored.DefaultProviders
	}
	settings.LastConversationID = stored.LastConversationID
	return settings, nil
}

func putSettings(ctx context.Context, tx repository.Tx, settings *model.Settings) error {
	return repository.PutJSON(ctx, tx, repository.Settings, settingsKey, settings)
}

// setActive persists the active conversation pointer; nil clears it.
func setActive(ctx context.Context, tx repository.Tx, id *string) error {
	settings, err := loadSettings(ctx, tx)
	if err != nil {
		return err
	}
	settings.LastConversationID = id
	return putSettings(ctx, tx, settings)
}

// sortByUpdated orders conversations newest first; ids break ties.
func sortByUpdated(convs []*model.Conversation) {
	sort.Slice(convs, func(i, j int) bool {
		if !convs[i].UpdatedAt.Equal(convs[j].UpdatedAt) {
			return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
		}
		return convs[i].ID < convs[j].ID
	})
}

func sortByOrder(folders []*model.Folder) {
	sort.Slice(folders, func(i, j int) bool {
		if folders[i].Order != folders[j].Order {
			return folders[i].Order < folders[j].Order
		}
		return folders[i].ID < folders[j].ID
	})
}

func buildSidebar(ctx context.Context, tx repository.Tx) (*model.Sidebar, error) {
	convs, err := repository.ListJSON[model.Conversation](ctx, tx, repository.Conversations)
	if err != nil {
		return nil, fmt.Errorf("could not list conversations: %w", err)
	}
	folders, err := repository.ListJSON[model.Folder](ctx, tx, repository.Folders)
	if err != nil {
		return nil, fmt.Errorf("could not list folders: %w", err)
	}
	settings, err := loadSettings(ctx, tx)
	if err != nil {
		return nil, err
	}

	sb := &model.Sidebar{
		Folders:       make([]*model.Folder, 0, len(folders)),
		Conversations: make([]*model.Conversation, 0, len(convs)),
	}
	for _, f := range folders {
		sb.Folders = append(sb.Folders, f)
	}
	for _, c := range convs {
		sb.Conversations = append(sb.Conversations, c)
	}
	sortByOrder(sb.Folders)
	sortByUpdated(sb.Conversations)

	if id := settings.LastConversationID; id != nil {
		if _, ok := convs[*id]; ok {
			sb.ActiveID = id
		}
	}
	return sb, nil
}

// publish notifies the observer after a committed mutation. conv is the
// conversation that changed, if any; it is reported when focus moved to it or
// when it is the active one. It runs under the writer lock so callbacks
// arrive in mutation order.
func (w *Workspace) publish(ctx context.Context, conv *model.Conversation, focusChanged bool) {
	var sb *model.Sidebar
	err := w.repo.View(ctx, func(tx repository.Tx) error {
		var err error
		sb, err = buildSidebar(ctx, tx)
		return err
	})
	if err != nil {
		slog.WarnContext(ctx, "Could not build sidebar for observers", "error", err)
		return
	}

	isActive := conv != nil && sb.ActiveID != nil && *sb.ActiveID == conv.ID
	if focusChanged || isActive {
		w.observer.ConversationChanged(conv)
	}
	w.observer.SidebarUpdated(sb.Folders, sb.Conversations, sb.ActiveID)
}

func isNotFound(err error) bool {
	return errors.Is(err, app_errors.ErrNotFound)
}
