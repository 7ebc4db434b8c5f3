package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"multi-ai/backend/internal/interfaces"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/service"
)

// RetryRequest names the provider to ask again.
type RetryRequest struct {
	Provider string `json:"provider" validate:"required" example:"claude"`
}

// ChatHandler streams provider answers to the client as they arrive.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleStreamMessage godoc
// @Summary      Send a message to several providers
// @Description  Stores the user message, then streams one data: event per provider answer in completion order, followed by event: done carrying the whole conversation.
// @Tags         Chats
// @Accept       json
// @Produce      text/event-stream
// @Param        request  body  service.SendRequest  true  "Message and providers"
// @Success      200  {object}  service.TurnEvent
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/chats/messages [post]
func (h *ChatHandler) HandleStreamMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	h.stream(w, r, func(onEach func(service.TurnEvent)) (*model.Conversation, error) {
		return h.service.Send(r.Context(), &req, onEach)
	})
}

// HandleRetry godoc
// @Summary      Ask one provider again
// @Description  Dispatches the current history to a single provider and streams its answer like a send.
// @Tags         Chats
// @Accept       json
// @Produce      text/event-stream
// @Param        conversationID  path  string        true  "Conversation ID"
// @Param        request         body  RetryRequest  true  "Provider"
// @Success      200  {object}  service.TurnEvent
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/conversations/{conversationID}/retry [post]
func (h *ChatHandler) HandleRetry(w http.ResponseWriter, r *http.Request) {
	var req RetryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	conversationID := chi.URLParam(r, "conversationID")

	h.stream(w, r, func(onEach func(service.TurnEvent)) (*model.Conversation, error) {
		return h.service.Retry(r.Context(), conversationID, req.Provider, onEach)
	})
}

// stream runs a turn and relays its events. Errors raised before the first
// event become plain JSON errors; later ones are sent in-stream.
func (h *ChatHandler) stream(w http.ResponseWriter, r *http.Request, run func(onEach func(service.TurnEvent)) (*model.Conversation, error)) {
	startStream(w)

	streamed := false
	clientGone := false
	conv, err := run(func(e service.TurnEvent) {
		streamed = true
		if clientGone {
			return
		}
		if werr := writeStreamEvent(w, e); werr != nil {
			slog.Info("Client disconnected, answers are still being stored", "conversation_id", e.ConversationID)
			clientGone = true
		}
	})
	if err != nil {
		if !streamed {
			respondWithError(w, err)
			return
		}
		sendStreamError(w, err.Error())
		return
	}

	if clientGone || r.Context().Err() != nil {
		return
	}
	if err := writeNamedEvent(w, "done", conv); err != nil {
		slog.Warn("Failed to write final stream event", "error", err)
	}
}
