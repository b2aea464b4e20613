package thread

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/middleware"
	"Agora/internal/core/threads"
)

// Handler handles thread subscription HTTP endpoints
type Handler struct {
	service threads.Service
}

// NewHandler creates a new thread handler
func NewHandler(service threads.Service) *Handler {
	return &Handler{service: service}
}

// HandleSubscribe handles POST /api/threads/{threadID}/subscribe
// Subscribing twice is a no-op; both calls return 204.
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.Subscribe)
}

// HandleUnsubscribe handles POST /api/threads/{threadID}/unsubscribe
// Unsubscribing when not subscribed is a no-op; both calls return 204.
func (h *Handler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.service.Unsubscribe)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, actorID, threadID int64) error) {
	actor := middleware.AuthenticatedUser(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	threadID, err := strconv.ParseInt(chi.URLParam(r, "threadID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "threadID must be an integer")
		return
	}

	if err := op(r.Context(), actor.ID, threadID); err != nil {
		if errors.Is(err, threads.ErrThreadNotFound) {
			writeError(w, http.StatusNotFound, "NotFound", "Thread not found")
			return
		}
		log.Printf("Unexpected error in thread handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
