package service_test

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"multi-ai/backend/internal/database"
	"multi-ai/backend/internal/llm"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/repository"
	"multi-ai/backend/internal/service"
)

// recorder is an Observer that keeps every callback it receives.
type recorder struct {
	mu       sync.Mutex
	changed  []*model.Conversation
	sidebars int
	activeID *string
}

func (r *recorder) ConversationChanged(conv *model.Conversation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed = append(r.changed, conv)
}

func (r *recorder) SidebarUpdated(_ []*model.Folder, _ []*model.Conversation, activeID *string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sidebars++
	r.activeID = activeID
}

func (r *recorder) lastChanged() *model.Conversation {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.changed) == 0 {
		return nil
	}
	return r.changed[len(r.changed)-1]
}

// newRepository opens a fresh sqlite store in a temp dir.
func newRepository(t *testing.T) repository.Repository {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	repo := repository.NewSQLiteRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// newRedisRepository opens a store on an in-process redis.
func newRedisRepository(t *testing.T) repository.Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	repo := repository.NewRedisRepository(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test")
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// setupWorkspace returns a workspace with a recording observer. A non-nil
// clock freezes time.
func setupWorkspace(t *testing.T, clock func() time.Time) (*service.Workspace, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts := []service.WorkspaceOption{service.WithObserver(rec)}
	if clock != nil {
		opts = append(opts, service.WithClock(clock))
	}
	return service.NewWorkspace(newRepository(t), opts...), rec
}

func frozenClock() func() time.Time {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func testRegistry(urls map[string]string) *llm.Registry {
	url := func(name string) string {
		if u, ok := urls[name]; ok {
			return u
		}
		return "http://127.0.0.1:1/" + name
	}
	return llm.NewRegistry(
		llm.NewClaudeAdapter(url("claude"), "claude-test"),
		llm.NewGeminiAdapter(url("gemini"), "gemini-test"),
		llm.NewChatGPTAdapter(url("chatgpt"), "gpt-test"),
		llm.NewOllamaAdapter(url("ollama"), "llama-test"),
	)
}

func strPtr(s string) *string { return &s }
