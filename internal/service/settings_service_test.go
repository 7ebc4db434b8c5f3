package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/llm"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/repository"
	"multi-ai/backend/internal/service"
)

func setupSettingsService(t *testing.T) (*service.SettingsService, *service.ConversationService) {
	ws, _ := setupWorkspace(t, nil)
	return service.NewSettingsService(ws, testRegistry(nil)), service.NewConversationService(ws, false)
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - defaults before first save", func(t *testing.T) {
		settings, _ := setupSettingsService(t)
		got, err := settings.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "dark", got.Theme)
		assert.Equal(t, []string{"claude", "gemini", "chatgpt"}, got.DefaultProviders)
		assert.Empty(t, got.APIKeys)
		assert.Nil(t, got.LastConversationID)
	})

	t.Run("Failure - repository error", func(t *testing.T) {
		db, mockDB, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mockDB.ExpectBegin()
		mockDB.ExpectQuery(regexp.QuoteMeta("SELECT value FROM settings WHERE id = ?")).
			WithArgs("app").
			WillReturnError(errors.New("disk I/O error"))
		mockDB.ExpectRollback()

		ws := service.NewWorkspace(repository.NewSQLiteRepository(db))
		settings := service.NewSettingsService(ws, testRegistry(nil))

		_, err = settings.Get(ctx)
		assert.ErrorContains(t, err, "disk I/O error")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestSettingsService_InitAndGet(t *testing.T) {
	ctx := context.Background()
	ws, _ := setupWorkspace(t, nil)

	// Only claude is registered, so the other defaults are dropped.
	registry := llm.NewRegistry(llm.NewClaudeAdapter("http://127.0.0.1:1", "m"))
	settings := service.NewSettingsService(ws, registry)

	first, err := settings.InitAndGet(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"claude"}, first.DefaultProviders)

	_, err = settings.Save(ctx, &model.Settings{Theme: "light", DefaultProviders: []string{"claude"}})
	require.NoError(t, err)

	again, err := settings.InitAndGet(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", again.Theme, "existing settings are never overwritten")
}

func TestSettingsService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - keeps the active conversation pointer", func(t *testing.T) {
		settings, convs := setupSettingsService(t)
		conv, err := convs.Create(ctx)
		require.NoError(t, err)

		saved, err := settings.Save(ctx, &model.Settings{
			Theme:            "light",
			DefaultProviders: []string{"gemini"},
			APIKeys:          map[string]string{"claude": "sk-1", "gemini": ""},
		})
		require.NoError(t, err)

		assert.Equal(t, "light", saved.Theme)
		assert.Equal(t, []string{"gemini"}, saved.DefaultProviders)
		assert.Equal(t, map[string]string{"claude": "sk-1"}, saved.APIKeys)
		require.NotNil(t, saved.LastConversationID)
		assert.Equal(t, conv.ID, *saved.LastConversationID)
	})

	t.Run("Success - nil keys keep stored keys", func(t *testing.T) {
		settings, _ := setupSettingsService(t)
		require.NoError(t, settings.SetAPIKey(ctx, "chatgpt", "sk-2"))

		saved, err := settings.Save(ctx, &model.Settings{Theme: "dark", DefaultProviders: []string{"chatgpt"}})
		require.NoError(t, err)
		assert.Equal(t, "sk-2", saved.APIKeys["chatgpt"])
	})

	t.Run("Failure - invalid input", func(t *testing.T) {
		settings, _ := setupSettingsService(t)

		_, err := settings.Save(ctx, &model.Settings{Theme: "blue"})
		assert.ErrorIs(t, err, app_errors.ErrValidation)

		_, err = settings.Save(ctx, &model.Settings{Theme: "dark", DefaultProviders: []string{"mistral"}})
		assert.ErrorIs(t, err, app_errors.ErrValidation)

		_, err = settings.Save(ctx, &model.Settings{Theme: "dark", APIKeys: map[string]string{"mistral": "k"}})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestSettingsService_Credential(t *testing.T) {
	ctx := context.Background()
	settings, _ := setupSettingsService(t)

	key, err := settings.Credential(ctx, "claude")
	require.NoError(t, err)
	assert.Empty(t, key)

	require.NoError(t, settings.SetAPIKey(ctx, "claude", "sk-ant"))
	key, err = settings.Credential(ctx, "claude")
	require.NoError(t, err)
	assert.Equal(t, "sk-ant", key)

	require.NoError(t, settings.SetAPIKey(ctx, "claude", ""))
	key, err = settings.Credential(ctx, "claude")
	require.NoError(t, err)
	assert.Empty(t, key)

	assert.ErrorIs(t, settings.SetAPIKey(ctx, "mistral", "k"), app_errors.ErrValidation)
}

func TestProviderService_List(t *testing.T) {
	ctx := context.Background()
	ws, _ := setupWorkspace(t, nil)
	registry := testRegistry(nil)
	settings := service.NewSettingsService(ws, registry)
	providers := service.NewProviderService(registry, settings)

	require.NoError(t, settings.SetAPIKey(ctx, "gemini", "g-key"))

	list, err := providers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)

	byName := map[string]service.ProviderInfo{}
	for _, p := range list {
		byName[p.Name] = p
	}
	assert.Equal(t, "claude", list[0].Name)
	assert.False(t, byName["claude"].Configured)
	assert.True(t, byName["gemini"].Configured)
	assert.Equal(t, "Gemini", byName["gemini"].DisplayName)
	assert.False(t, byName["ollama"].RequiresCredential)
	assert.True(t, byName["ollama"].Configured)
}
