package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"
)

// Handler handles post HTTP endpoints
type Handler struct {
	service posts.Service
}

// NewHandler creates a new post handler
func NewHandler(service posts.Service) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /api/posts
// Returns the authenticated user's own posts, newest first
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor := middleware.AuthenticatedUser(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	list, err := h.service.ListOwnPosts(r.Context(), actor)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"posts": list})
}

// HandleCreate handles POST /api/posts
// The post's author is always the authenticated user; a caller-supplied
// author id is ignored by the service.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor := middleware.AuthenticatedUser(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// Bound the body well above the 10k text limit but below abuse size
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.CreatePost(r.Context(), actor, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PATCH /api/posts/{postID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor := middleware.AuthenticatedUser(r)
	if actor == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "postID must be an integer")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	updated, err := h.service.UpdatePost(r.Context(), actor, postID, req.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
