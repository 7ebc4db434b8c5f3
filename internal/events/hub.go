// Package events fans the workspace's collaborator callbacks out to any
// number of subscribers, e.g. SSE clients of the HTTP API.
//
//	hub := events.NewHub(16)
//	ws := service.NewWorkspace(repo, service.WithObserver(hub))
//	ch, cancel := hub.Subscribe()
//	defer cancel()
package events

import (
	"log/slog"
	"sync"

	"multi-ai/backend/internal/model"
)

// Event types.
const (
	TypeConversationChanged = "conversation_changed"
	TypeSidebarUpdated      = "sidebar_updated"
)

type Event struct {
	Type         string              `json:"type"`
	Conversation *model.Conversation `json:"conversation,omitempty"`
	Sidebar      *model.Sidebar      `json:"sidebar,omitempty"`
}

// Hub implements service.Observer. Delivery never blocks the publisher: a
// subscriber whose buffer is full misses the event.
type Hub struct {
	mu     sync.RWMutex
	subs   map[chan Event]struct{}
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{subs: make(map[chan Event]struct{}), buffer: buffer}
}

// Subscribe returns a channel of future events and a function that
// unsubscribes and closes it. The cancel function is safe to call twice.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) ConversationChanged(conv *model.Conversation) {
	h.broadcast(Event{Type: TypeConversationChanged, Conversation: conv})
}

func (h *Hub) SidebarUpdated(folders []*model.Folder, conversations []*model.Conversation, activeID *string) {
	h.broadcast(Event{Type: TypeSidebarUpdated, Sidebar: &model.Sidebar{
		Folders:       folders,
		Conversations: conversations,
		ActiveID:      activeID,
	}})
}

func (h *Hub) broadcast(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
			slog.Warn("Dropping event for slow subscriber", "type", e.Type)
		}
	}
}
