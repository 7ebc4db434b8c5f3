package api

import (
	"log/slog"
	"net/http"
	"time"

	"multi-ai/backend/internal/events"
)

// EventSource is the subscription side of the events hub.
type EventSource interface {
	Subscribe() (<-chan events.Event, func())
}

// keepAliveInterval is how often an idle stream gets a comment frame.
const keepAliveInterval = 25 * time.Second

type EventsHandler struct {
	source EventSource
}

func NewEventsHandler(source EventSource) *EventsHandler {
	return &EventsHandler{source: source}
}

// HandleEvents godoc
// @Summary      Subscribe to workspace changes
// @Description  Streams conversation_changed and sidebar_updated events until the client disconnects.
// @Tags         Events
// @Produce      text/event-stream
// @Success      200  {object}  events.Event
// @Router       /v1/events [get]
func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	if !startStream(w) {
		respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Streaming is not supported."})
		return
	}
	ch, cancel := h.source.Subscribe()
	defer cancel()

	w.WriteHeader(http.StatusOK)
	w.(http.Flusher).Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			slog.Debug("Event subscriber disconnected")
			return
		case <-ticker.C:
			if _, err := w.Write([]byte(": keep-alive\n\n")); err != nil {
				return
			}
			w.(http.Flusher).Flush()
		case e, ok := <-ch:
			if !ok {
				return
			}
			if err := writeNamedEvent(w, e.Type, e); err != nil {
				slog.Debug("Could not write event, client likely disconnected", "error", err)
				return
			}
		}
	}
}
