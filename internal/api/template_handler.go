package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"multi-ai/backend/internal/interfaces"
	"multi-ai/backend/internal/model"
)

// TemplateRequest is the DTO for creating or replacing a template.
// Variables are derived from the content and cannot be set directly.
type TemplateRequest struct {
	Title    string `json:"title" validate:"required,max=200" example:"Summarize"`
	Category string `json:"category" example:"writing"`
	Content  string `json:"content" validate:"required" example:"Summarize {text} in {n} bullet points"`
}

// InstantiateRequest carries the placeholder values.
type InstantiateRequest struct {
	Values map[string]string `json:"values"`
}

// InstantiateResponse is the filled-in prompt.
type InstantiateResponse struct {
	Content string `json:"content"`
}

type TemplateHandler struct {
	service interfaces.TemplateService
}

func NewTemplateHandler(svc interfaces.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: svc}
}

// ListTemplates godoc
// @Summary      List templates
// @Description  Most recently updated first. Omit category or pass "all" for every template.
// @Tags         Templates
// @Produce      json
// @Param        category  query  string  false  "Category filter"
// @Success      200  {array}   model.Template
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/templates [get]
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, templates)
}

// CreateTemplate godoc
// @Summary      Create a template
// @Tags         Templates
// @Accept       json
// @Produce      json
// @Param        request  body  TemplateRequest  true  "Template"
// @Success      201  {object}  model.Template
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/templates [post]
func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	tmpl, err := h.service.Save(r.Context(), &model.Template{Title: req.Title, Category: req.Category, Content: req.Content})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, tmpl)
}

// GetTemplate godoc
// @Summary      Get a template
// @Tags         Templates
// @Produce      json
// @Param        templateID  path  string  true  "Template ID"
// @Success      200  {object}  model.Template
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/templates/{templateID} [get]
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.service.Get(r.Context(), chi.URLParam(r, "templateID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tmpl)
}

// UpdateTemplate godoc
// @Summary      Replace a template
// @Tags         Templates
// @Accept       json
// @Produce      json
// @Param        templateID  path  string           true  "Template ID"
// @Param        request     body  TemplateRequest  true  "Template"
// @Success      200  {object}  model.Template
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/templates/{templateID} [put]
func (h *TemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	tmpl, err := h.service.Save(r.Context(), &model.Template{
		ID:       chi.URLParam(r, "templateID"),
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tmpl)
}

// DeleteTemplate godoc
// @Summary      Delete a template
// @Tags         Templates
// @Param        templateID  path  string  true  "Template ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/templates/{templateID} [delete]
func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "templateID")); err != nil {
		respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// InstantiateTemplate godoc
// @Summary      Fill in a template
// @Description  Replaces each {name} that has a value. Placeholders without a value are left as written.
// @Tags         Templates
// @Accept       json
// @Produce      json
// @Param        templateID  path  string              true  "Template ID"
// @Param        request     body  InstantiateRequest  true  "Placeholder values"
// @Success      200  {object}  InstantiateResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/templates/{templateID}/instantiate [post]
func (h *TemplateHandler) InstantiateTemplate(w http.ResponseWriter, r *http.Request) {
	var req InstantiateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	content, err := h.service.Instantiate(r.Context(), chi.URLParam(r, "templateID"), req.Values)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, InstantiateResponse{Content: content})
}
