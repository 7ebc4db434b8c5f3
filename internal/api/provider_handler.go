package api

import (
	"net/http"

	"multi-ai/backend/internal/interfaces"
)

// ProviderHandler handles HTTP requests for provider discovery.
type ProviderHandler struct {
	service interfaces.ProviderService
}

func NewProviderHandler(svc interfaces.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: svc}
}

// HandleListProviders godoc
// @Summary      List providers
// @Description  Every registered provider, whether it needs an API key and whether it is ready to use.
// @Tags         Providers
// @Produce      json
// @Success      200  {array}   service.ProviderInfo
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/providers [get]
func (h *ProviderHandler) HandleListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, providers)
}
