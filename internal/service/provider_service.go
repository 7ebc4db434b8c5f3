package service

import (
	"context"

	"multi-ai/backend/internal/llm"
)

// ProviderInfo describes one registered provider for selection UIs.
type ProviderInfo struct {
	Name               string `json:"name"`
	DisplayName        string `json:"display_name"`
	RequiresCredential bool   `json:"requires_credential"`
	Configured         bool   `json:"configured"`
}

// ProviderService reports which providers can be dispatched to.
type ProviderService struct {
	registry *llm.Registry
	settings *SettingsService
}

func NewProviderService(registry *llm.Registry, settings *SettingsService) *ProviderService {
	return &ProviderService{registry: registry, settings: settings}
}

// List returns every registered provider in registration order. Configured is
// true when the provider needs no key or one is stored.
func (s *ProviderService) List(ctx context.Context) ([]ProviderInfo, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	adapters := s.registry.Adapters()
	out := make([]ProviderInfo, 0, len(adapters))
	for _, a := range adapters {
		needsKey := llm.RequiresCredential(a)
		out = append(out, ProviderInfo{
			Name:               a.Name(),
			DisplayName:        a.DisplayName(),
			RequiresCredential: needsKey,
			Configured:         !needsKey || settings.APIKeys[a.Name()] != "",
		})
	}
	return out, nil
}
