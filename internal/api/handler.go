package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"multi-ai/backend/internal/interfaces"
	"multi-ai/backend/internal/model"
)

// UpdateTitleRequest is the DTO for renaming a conversation.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100" example:"Trip planning"`
}

// MoveFolderRequest files a conversation; a null or empty folder_id unfiles it.
type MoveFolderRequest struct {
	FolderID *string `json:"folder_id" example:"folder_3f0c..."`
}

// RateMessageRequest rates an assistant message. Sending the current rating again clears it.
type RateMessageRequest struct {
	Rating string `json:"rating" validate:"required,oneof=up down" example:"up"`
}

// SearchResponse distinguishes "no search" (active=false) from "no matches".
type SearchResponse struct {
	Active  bool                  `json:"active"`
	Results []*model.Conversation `json:"results"`
}

// ConversationHandler serves conversation management and the sidebar.
type ConversationHandler struct {
	service interfaces.ConversationService
}

func NewConversationHandler(svc interfaces.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: svc}
}

// ListConversations godoc
// @Summary      List conversations
// @Tags         Conversations
// @Produce      json
// @Success      200  {array}   model.Conversation
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/conversations [get]
func (h *ConversationHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	convs, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, convs)
}

// CreateConversation godoc
// @Summary      Start a new conversation
// @Description  Creates an empty conversation and makes it the active one.
// @Tags         Conversations
// @Produce      json
// @Success      201  {object}  model.Conversation
// @Router       /v1/conversations [post]
func (h *ConversationHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.service.Create(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, conv)
}

// GetConversation godoc
// @Summary      Get a conversation with its messages
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  model.Conversation
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID} [get]
func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.service.Get(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conv)
}

// DeleteConversation godoc
// @Summary      Delete a conversation
// @Tags         Conversations
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID} [delete]
func (h *ConversationHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "conversationID")); err != nil {
		respondWithError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateTitle godoc
// @Summary      Rename a conversation
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path  string              true  "Conversation ID"
// @Param        request         body  UpdateTitleRequest  true  "New title"
// @Success      200  {object}  model.Conversation
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/title [put]
func (h *ConversationHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	var req UpdateTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	conv, err := h.service.Rename(r.Context(), chi.URLParam(r, "conversationID"), req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conv)
}

// ToggleFavorite godoc
// @Summary      Toggle the favorite flag
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  model.Conversation
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/favorite [post]
func (h *ConversationHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	conv, err := h.service.ToggleFavorite(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conv)
}

// MoveToFolder godoc
// @Summary      Move a conversation into a folder
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path  string             true  "Conversation ID"
// @Param        request         body  MoveFolderRequest  true  "Target folder"
// @Success      200  {object}  model.Conversation
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/folder [put]
func (h *ConversationHandler) MoveToFolder(w http.ResponseWriter, r *http.Request) {
	var req MoveFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	conv, err := h.service.MoveToFolder(r.Context(), chi.URLParam(r, "conversationID"), req.FolderID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conv)
}

// SelectConversation godoc
// @Summary      Make a conversation the active one
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path  string  true  "Conversation ID"
// @Success      200  {object}  model.Conversation
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/select [post]
func (h *ConversationHandler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.service.Select(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conv)
}

// RateMessage godoc
// @Summary      Rate an assistant message
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversationID  path  string              true  "Conversation ID"
// @Param        messageID       path  string              true  "Message ID"
// @Param        request         body  RateMessageRequest  true  "Rating"
// @Success      200  {object}  model.Conversation
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/messages/{messageID}/rating [put]
func (h *ConversationHandler) RateMessage(w http.ResponseWriter, r *http.Request) {
	var req RateMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	conv, err := h.service.RateMessage(r.Context(), chi.URLParam(r, "conversationID"), chi.URLParam(r, "messageID"), req.Rating)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conv)
}

// Search godoc
// @Summary      Search conversations
// @Description  Case-insensitive match on titles and message bodies. A blank query returns active=false.
// @Tags         Conversations
// @Produce      json
// @Param        q  query  string  false  "Search text"
// @Success      200  {object}  SearchResponse
// @Router       /v1/search [get]
func (h *ConversationHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, active, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	if results == nil {
		results = []*model.Conversation{}
	}
	respondWithJSON(w, http.StatusOK, SearchResponse{Active: active, Results: results})
}

// GetSidebar godoc
// @Summary      Sidebar view
// @Description  Folders by order, conversations by recency, and the active conversation id.
// @Tags         Conversations
// @Produce      json
// @Success      200  {object}  model.Sidebar
// @Router       /v1/sidebar [get]
func (h *ConversationHandler) GetSidebar(w http.ResponseWriter, r *http.Request) {
	sb, err := h.service.Sidebar(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sb)
}
