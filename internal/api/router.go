package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "multi-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Conversations *ConversationHandler
	Chat          *ChatHandler
	Folders       *FolderHandler
	Templates     *TemplateHandler
	Settings      *SettingsHandler
	Providers     *ProviderHandler
	Data          *DataHandler
	Events        *EventsHandler
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes get a request timeout.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Settings ---
			r.Get("/settings", h.Settings.GetSettings)
			r.Post("/settings", h.Settings.UpdateSettings)
			r.Put("/settings/keys/{provider}", h.Settings.SetAPIKey)

			// --- Providers ---
			r.Get("/providers", h.Providers.HandleListProviders)

			// --- Conversations ---
			r.Get("/sidebar", h.Conversations.GetSidebar)
			r.Get("/search", h.Conversations.Search)
			r.Get("/conversations", h.Conversations.ListConversations)
			r.Post("/conversations", h.Conversations.CreateConversation)
			r.Get("/conversations/{conversationID}", h.Conversations.GetConversation)
			r.Delete("/conversations/{conversationID}", h.Conversations.DeleteConversation)
			r.Put("/conversations/{conversationID}/title", h.Conversations.UpdateTitle)
			r.Post("/conversations/{conversationID}/favorite", h.Conversations.ToggleFavorite)
			r.Put("/conversations/{conversationID}/folder", h.Conversations.MoveToFolder)
			r.Post("/conversations/{conversationID}/select", h.Conversations.SelectConversation)
			r.Put("/conversations/{conversationID}/messages/{messageID}/rating", h.Conversations.RateMessage)

			// --- Folders ---
			r.Get("/folders", h.Folders.ListFolders)
			r.Post("/folders", h.Folders.CreateFolder)
			r.Put("/folders/{folderID}", h.Folders.RenameFolder)
			r.Delete("/folders/{folderID}", h.Folders.DeleteFolder)

			// --- Templates ---
			r.Get("/templates", h.Templates.ListTemplates)
			r.Post("/templates", h.Templates.CreateTemplate)
			r.Get("/templates/{templateID}", h.Templates.GetTemplate)
			r.Put("/templates/{templateID}", h.Templates.UpdateTemplate)
			r.Delete("/templates/{templateID}", h.Templates.DeleteTemplate)
			r.Post("/templates/{templateID}/instantiate", h.Templates.InstantiateTemplate)

			// --- Export / Import ---
			r.Get("/export", h.Data.ExportAll)
			r.Post("/export", h.Data.ExportSelected)
			r.Post("/import", h.Data.Import)
		})

		// Streaming routes hold the connection open and must NOT have a timeout.
		r.Group(func(r chi.Router) {
			r.Post("/chats/messages", h.Chat.HandleStreamMessage)
			r.Post("/conversations/{conversationID}/retry", h.Chat.HandleRetry)
			r.Get("/events", h.Events.HandleEvents)
		})
	})

	return r
}
