package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/post"
	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"
)

// PostRoutes returns the post endpoints, all behind authentication
func PostRoutes(service posts.Service, auth *middleware.AuthMiddleware) chi.Router {
	h := post.NewHandler(service)
	r := chi.NewRouter()

	r.Use(auth.RequireAuth)
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Patch("/{postID}", h.HandleUpdate)

	return r
}
