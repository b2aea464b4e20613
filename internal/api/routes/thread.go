package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/thread"
	"Agora/internal/api/middleware"
	"Agora/internal/core/threads"
)

// ThreadRoutes returns the thread subscription endpoints, all behind
// authentication
func ThreadRoutes(service threads.Service, auth *middleware.AuthMiddleware) chi.Router {
	h := thread.NewHandler(service)
	r := chi.NewRouter()

	r.Use(auth.RequireAuth)
	r.Post("/{threadID}/subscribe", h.HandleSubscribe)
	r.Post("/{threadID}/unsubscribe", h.HandleUnsubscribe)

	return r
}
