package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"multi-ai/backend/internal/interfaces"
	"multi-ai/backend/internal/model"
)

// SettingsRequest holds the user-editable preferences. API keys are managed
// one provider at a time through the keys endpoint.
type SettingsRequest struct {
	Theme            string   `json:"theme" validate:"required,oneof=dark light" example:"dark"`
	DefaultProviders []string `json:"default_providers" validate:"dive,required" example:"claude,gemini"`
}

// SettingsResponse never carries the keys themselves, only which providers have one.
type SettingsResponse struct {
	Theme               string   `json:"theme"`
	DefaultProviders    []string `json:"default_providers"`
	ConfiguredProviders []string `json:"configured_providers"`
	LastConversationID  *string  `json:"last_conversation_id"`
}

// APIKeyRequest sets or, when empty, clears one provider key.
type APIKeyRequest struct {
	Key string `json:"key" example:"sk-..."`
}

func newSettingsResponse(s *model.Settings) SettingsResponse {
	configured := make([]string, 0, len(s.APIKeys))
	for name, key := range s.APIKeys {
		if key != "" {
			configured = append(configured, name)
		}
	}
	sort.Strings(configured)
	providers := s.DefaultProviders
	if providers == nil {
		providers = []string{}
	}
	return SettingsResponse{
		Theme:               s.Theme,
		DefaultProviders:    providers,
		ConfiguredProviders: configured,
		LastConversationID:  s.LastConversationID,
	}
}

type SettingsHandler struct {
	service interfaces.SettingsService
}

func NewSettingsHandler(svc interfaces.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// GetSettings godoc
// @Summary      Get settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  SettingsResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newSettingsResponse(settings))
}

// UpdateSettings godoc
// @Summary      Update settings
// @Description  Replaces the theme and default providers. Stored API keys are kept.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request  body  SettingsRequest  true  "Preferences"
// @Success      200  {object}  SettingsResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/settings [post]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	saved, err := h.service.Save(r.Context(), &model.Settings{
		Theme:            req.Theme,
		DefaultProviders: req.DefaultProviders,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newSettingsResponse(saved))
}

// SetAPIKey godoc
// @Summary      Set a provider API key
// @Description  An empty key removes the stored credential.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        provider  path  string         true  "Provider name"
// @Param        request   body  APIKeyRequest  true  "Key"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/settings/keys/{provider} [put]
func (h *SettingsHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req APIKeyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.SetAPIKey(r.Context(), chi.URLParam(r, "provider"), req.Key); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
