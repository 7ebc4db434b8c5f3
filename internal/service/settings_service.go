package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/llm"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/repository"
)

var themes = []string{"dark", "light"}

type SettingsService struct {
	ws       *Workspace
	registry *llm.Registry
}

// NewSettingsService validates provider names against registry.
func NewSettingsService(ws *Workspace, registry *llm.Registry) *SettingsService {
	return &SettingsService{ws: ws, registry: registry}
}

// InitAndGet returns the stored settings, writing the defaults on first run.
// Default providers that are not registered are dropped from the initial set.
func (s *SettingsService) InitAndGet(ctx context.Context) (*model.Settings, error) {
	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	var settings *model.Settings
	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		_, err := tx.Get(ctx, repository.Settings, settingsKey)
		if err == nil {
			settings, err = loadSettings(ctx, tx)
			return err
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("could not read settings: %w", err)
		}

		slog.InfoContext(ctx, "No stored settings found. Writing defaults.")
		settings = DefaultSettings()
		settings.DefaultProviders = slices.DeleteFunc(settings.DefaultProviders, func(name string) bool {
			_, ok := s.registry.Lookup(name)
			return !ok
		})
		return putSettings(ctx, tx, settings)
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Get returns the stored settings merged over the defaults.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	var settings *model.Settings
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		var err error
		settings, err = loadSettings(ctx, tx)
		return err
	})
	return settings, err
}

// Save validates and stores the user-editable settings. A nil APIKeys map
// keeps the stored keys; the active conversation pointer is never changed here.
func (s *SettingsService) Save(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	if err := s.validate(settings); err != nil {
		return nil, err
	}

	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	var saved *model.Settings
	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		current, err := loadSettings(ctx, tx)
		if err != nil {
			return err
		}
		current.Theme = settings.Theme
		current.DefaultProviders = slices.Clone(settings.DefaultProviders)
		if settings.APIKeys != nil {
			current.APIKeys = make(map[string]string, len(settings.APIKeys))
			for name, key := range settings.APIKeys {
				if key != "" {
					current.APIKeys[name] = key
				}
			}
		}
		saved = current
		return putSettings(ctx, tx, current)
	})
	if err != nil {
		return nil, fmt.Errorf("could not save settings: %w", err)
	}
	return saved, nil
}

func (s *SettingsService) validate(settings *model.Settings) error {
	if !slices.Contains(themes, settings.Theme) {
		return fmt.Errorf("%w: theme must be one of %v", app_errors.ErrValidation, themes)
	}
	for _, name := range settings.DefaultProviders {
		if _, ok := s.registry.Lookup(name); !ok {
			return fmt.Errorf("%w: unknown provider %q", app_errors.ErrValidation, name)
		}
	}
	for name := range settings.APIKeys {
		if _, ok := s.registry.Lookup(name); !ok {
			return fmt.Errorf("%w: unknown provider %q", app_errors.ErrValidation, name)
		}
	}
	return nil
}

// SetAPIKey stores the credential for one provider; an empty key removes it.
func (s *SettingsService) SetAPIKey(ctx context.Context, provider, key string) error {
	if _, ok := s.registry.Lookup(provider); !ok {
		return fmt.Errorf("%w: unknown provider %q", app_errors.ErrValidation, provider)
	}

	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		settings, err := loadSettings(ctx, tx)
		if err != nil {
			return err
		}
		if key == "" {
			delete(settings.APIKeys, provider)
		} else {
			settings.APIKeys[provider] = key
		}
		return putSettings(ctx, tx, settings)
	})
	if err != nil {
		return fmt.Errorf("could not save API key: %w", err)
	}
	slog.InfoContext(ctx, "Updated API key", "provider", provider, "configured", key != "")
	return nil
}

// Credential returns the stored API key for provider, or "" when none is set.
func (s *SettingsService) Credential(ctx context.Context, provider string) (string, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	return settings.APIKeys[provider], nil
}
