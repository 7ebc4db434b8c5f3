package interfaces

import (
	"context"

	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/service"
)

// This file defines the interfaces for our core services.
// The API layer depends on these rather than on the concrete services, and
// the handler tests substitute the generated mocks in ./mocks.

// ConversationService defines the contract for conversation management.
type ConversationService interface {
	Create(ctx context.Context) (*model.Conversation, error)
	Get(ctx context.Context, id string) (*model.Conversation, error)
	List(ctx context.Context) ([]*model.Conversation, error)
	Rename(ctx context.Context, id, title string) (*model.Conversation, error)
	ToggleFavorite(ctx context.Context, id string) (*model.Conversation, error)
	MoveToFolder(ctx context.Context, id string, folderID *string) (*model.Conversation, error)
	RateMessage(ctx context.Context, id, messageID, rating string) (*model.Conversation, error)
	Delete(ctx context.Context, id string) error
	Select(ctx context.Context, id string) (*model.Conversation, error)
	Search(ctx context.Context, query string) ([]*model.Conversation, bool, error)
	Sidebar(ctx context.Context) (*model.Sidebar, error)
}

// ChatService defines the contract for sending turns to providers.
type ChatService interface {
	Send(ctx context.Context, req *service.SendRequest, onEach func(service.TurnEvent)) (*model.Conversation, error)
	Retry(ctx context.Context, conversationID, provider string, onEach func(service.TurnEvent)) (*model.Conversation, error)
}

// FolderService defines the contract for folder management.
type FolderService interface {
	Create(ctx context.Context, name string) (*model.Folder, error)
	Rename(ctx context.Context, id, name string) (*model.Folder, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.Folder, error)
}

// TemplateService defines the contract for prompt templates.
type TemplateService interface {
	Save(ctx context.Context, t *model.Template) (*model.Template, error)
	Get(ctx context.Context, id string) (*model.Template, error)
	List(ctx context.Context, category string) ([]*model.Template, error)
	Delete(ctx context.Context, id string) error
	Instantiate(ctx context.Context, id string, values map[string]string) (string, error)
}

// SettingsService defines the contract for managing application settings.
type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) (*model.Settings, error)
	SetAPIKey(ctx context.Context, provider, key string) error
}

// ProviderService lists the providers a turn can be sent to.
type ProviderService interface {
	List(ctx context.Context) ([]service.ProviderInfo, error)
}

// DataService defines the contract for export and import.
type DataService interface {
	ExportAll(ctx context.Context) (*model.Bundle, error)
	ExportSelected(ctx context.Context, ids []string) (*model.Bundle, error)
	Import(ctx context.Context, raw []byte) (*service.ImportSummary, error)
}

// Compile-time checks that the services satisfy the contracts.
var (
	_ ConversationService = (*service.ConversationService)(nil)
	_ ChatService         = (*service.ChatService)(nil)
	_ FolderService       = (*service.FolderService)(nil)
	_ TemplateService     = (*service.TemplateService)(nil)
	_ SettingsService     = (*service.SettingsService)(nil)
	_ ProviderService     = (*service.ProviderService)(nil)
	_ DataService         = (*service.DataService)(nil)
)
