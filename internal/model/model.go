package model

import (
	"time"
)

// Roles a message can carry.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Ratings a user can attach to an assistant message.
const (
	RatingUp   = "up"
	RatingDown = "down"
)

// DefaultConversationTitle is the title of a conversation before its first user message.
const DefaultConversationTitle = "New conversation"

// DefaultTemplateCategory is used when a template is saved without a category.
const DefaultTemplateCategory = "general"

// Conversation is a titled, append-only log of messages.
type Conversation struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FolderID   *string   `json:"folder_id"` // Weak reference, nil means "no folder".
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Messages   []Message `json:"messages"`
}

// Message is one entry of a conversation. Only Rating may change after append.
type Message struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Provider  string    `json:"provider,omitempty"` // Adapter that produced an assistant message.
	Content   string    `json:"content"`
	IsError   bool      `json:"is_error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	LatencyMs *int64    `json:"latency_ms,omitempty"`
	Rating    *string   `json:"rating,omitempty"`
}

// InFolder reports whether the conversation currently references folderID.
func (c *Conversation) InFolder(folderID string) bool {
	return c.FolderID != nil && *c.FolderID == folderID
}

// UserMessageCount returns how many user-role messages the conversation holds.
func (c *Conversation) UserMessageCount() int {
	n := 0
	for _, m := range c.Messages {
		if m.Role == RoleUser {
			n++
		}
	}
	return n
}

// Folder groups conversations. Order is a monotonic display key.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Order     int64     `json:"order"`
}

// Template is a reusable prompt body with {name} placeholders.
type Template struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Variables []string  `json:"variables"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Settings holds per-provider credentials and UI preferences.
type Settings struct {
	APIKeys            map[string]string `json:"api_keys"`
	Theme              string            `json:"theme" validate:"oneof=dark light"`
	DefaultProviders   []string          `json:"default_providers" validate:"dive,required"`
	LastConversationID *string           `json:"last_conversation_id"`
}

// BundleData carries the id-keyed collections of an export bundle.
type BundleData struct {
	Conversations map[string]*Conversation `json:"conversations"`
	Folders       map[string]*Folder       `json:"folders"`
	Templates     map[string]*Template     `json:"templates"`
}

// Bundle is the versioned export/import document.
type Bundle struct {
	Version    string      `json:"version"`
	ExportedAt time.Time   `json:"exported_at"`
	Data       *BundleData `json:"data"`
}

// Sidebar is the grouped view handed to the UI after every visible change.
type Sidebar struct {
	Folders       []*Folder       `json:"folders"`
	Conversations []*Conversation `json:"conversations"`
	ActiveID      *string         `json:"active_id"`
}

// Favorites returns the favorite conversations in sidebar order.
func (s *Sidebar) Favorites() []*Conversation {
	var out []*Conversation
	for _, c := range s.Conversations {
		if c.IsFavorite {
			out = append(out, c)
		}
	}
	return out
}

// InFolder returns the conversations filed under folderID.
func (s *Sidebar) InFolder(folderID string) []*Conversation {
	var out []*Conversation
	for _, c := range s.Conversations {
		if c.InFolder(folderID) {
			out = append(out, c)
		}
	}
	return out
}

// General returns conversations without a folder. Conversations that point at
// a folder that no longer exists are listed here too, so they stay reachable.
func (s *Sidebar) General() []*Conversation {
	known := make(map[string]bool, len(s.Folders))
	for _, f := range s.Folders {
		known[f.ID] = true
	}
	var out []*Conversation
	for _, c := range s.Conversations {
		if c.FolderID == nil || !known[*c.FolderID] {
			out = append(out, c)
		}
	}
	return out
}
