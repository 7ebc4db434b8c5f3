package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/interfaces"
)

// ExportRequest selects the conversations to export.
type ExportRequest struct {
	ConversationIDs []string `json:"conversation_ids" validate:"required,min=1,dive,required"`
}

type DataHandler struct {
	service interfaces.DataService
}

func NewDataHandler(svc interfaces.DataService) *DataHandler {
	return &DataHandler{service: svc}
}

func exportFilename() string {
	return fmt.Sprintf("multi-ai-export-%s.json", time.Now().UTC().Format("2006-01-02"))
}

// ExportAll godoc
// @Summary      Export everything
// @Description  Downloads all conversations, folders and templates as one bundle.
// @Tags         Data
// @Produce      json
// @Success      200  {object}  model.Bundle
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/export [get]
func (h *DataHandler) ExportAll(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.service.ExportAll(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename()))
	respondWithJSON(w, http.StatusOK, bundle)
}

// ExportSelected godoc
// @Summary      Export selected conversations
// @Description  Unknown ids are skipped. Folders and templates are exported empty.
// @Tags         Data
// @Accept       json
// @Produce      json
// @Param        request  body  ExportRequest  true  "Conversation ids"
// @Success      200  {object}  model.Bundle
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/export [post]
func (h *DataHandler) ExportSelected(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	bundle, err := h.service.ExportSelected(r.Context(), req.ConversationIDs)
	if err != nil {
		respondWithError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename()))
	respondWithJSON(w, http.StatusOK, bundle)
}

// Import godoc
// @Summary      Import a bundle
// @Description  Merges the bundle into the workspace. Records with the same id are replaced; nothing else is removed.
// @Tags         Data
// @Accept       json
// @Produce      json
// @Param        bundle  body  model.Bundle  true  "Export bundle"
// @Success      200  {object}  service.ImportSummary
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/import [post]
func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, fmt.Errorf("%w: bundle exceeds %d bytes", app_errors.ErrValidation, tooLarge.Limit))
			return
		}
		respondWithError(w, fmt.Errorf("could not read bundle: %w", err))
		return
	}
	summary, err := h.service.Import(r.Context(), raw)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}
