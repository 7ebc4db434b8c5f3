package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"multi-ai/backend/internal/api"
	"multi-ai/backend/internal/config"
	"multi-ai/backend/internal/database"
	"multi-ai/backend/internal/dispatch"
	"multi-ai/backend/internal/events"
	"multi-ai/backend/internal/llm"
	"multi-ai/backend/internal/repository"
	"multi-ai/backend/internal/service"
)

const (
	redisKeyPrefix  = "multiai"
	eventBuffer     = 32
	shutdownTimeout = 10 * time.Second
)

// App is the fully wired application. The HTTP server and the CLI commands
// share the same services.
type App struct {
	Config *config.Config
	Repo   repository.Repository
	Hub    *events.Hub
	Server *http.Server

	Conversations *service.ConversationService
	Chat          *service.ChatService
	Folders       *service.FolderService
	Templates     *service.TemplateService
	Settings      *service.SettingsService
	Providers     *service.ProviderService
	Data          *service.DataService
}

// NewApp opens storage, registers the providers and builds every service and
// handler. Callers must Close the returned App.
func NewApp(cfg *config.Config) (*App, error) {
	repo, err := openRepository(cfg)
	if err != nil {
		return nil, err
	}

	registry := newRegistry(cfg)
	hub := events.NewHub(eventBuffer)
	ws := service.NewWorkspace(repo, service.WithObserver(hub))

	a := &App{
		Config:        cfg,
		Repo:          repo,
		Hub:           hub,
		Conversations: service.NewConversationService(ws, cfg.ValidateFolderMoves),
		Folders:       service.NewFolderService(ws),
		Templates:     service.NewTemplateService(ws),
		Settings:      service.NewSettingsService(ws, registry),
		Data:          service.NewDataService(ws),
	}
	a.Providers = service.NewProviderService(registry, a.Settings)
	a.Chat = service.NewChatService(a.Conversations, dispatch.NewEngine(registry, a.Settings, nil))

	settings, err := a.Settings.InitAndGet(context.Background())
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("failed to initialize application settings: %w", err)
	}
	slog.Info("Loaded application settings", "theme", settings.Theme, "default_providers", settings.DefaultProviders)

	router := api.NewRouter(api.Handlers{
		Conversations: api.NewConversationHandler(a.Conversations),
		Chat:          api.NewChatHandler(a.Chat),
		Folders:       api.NewFolderHandler(a.Folders),
		Templates:     api.NewTemplateHandler(a.Templates),
		Settings:      api.NewSettingsHandler(a.Settings),
		Providers:     api.NewProviderHandler(a.Providers),
		Data:          api.NewDataHandler(a.Data),
		Events:        api.NewEventsHandler(hub),
	})

	a.Server = &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, strconv.Itoa(cfg.AppPort)),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}
	return a, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.Repo.Close()
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}

func openRepository(cfg *config.Config) (repository.Repository, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite, "":
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)
		return repository.NewSQLiteRepository(db), nil

	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return repository.NewRedisRepository(rdb, redisKeyPrefix), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func newRegistry(cfg *config.Config) *llm.Registry {
	return llm.NewRegistry(
		llm.NewClaudeAdapter(cfg.ClaudeURL, cfg.ClaudeModel),
		llm.NewGeminiAdapter(cfg.GeminiURL, cfg.GeminiModel),
		llm.NewChatGPTAdapter(cfg.ChatGPTURL, cfg.ChatGPTModel),
		llm.NewOllamaAdapter(cfg.OllamaURL, cfg.OllamaModel),
	)
}

// LogConfigSource reports where the configuration came from.
func LogConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

// SetupLogger installs a JSON slog logger on stderr as the default.
func SetupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
