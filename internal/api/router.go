package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/shiian109/loungeup/internal/board"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
func NewRouter(svc *board.Service, authEnabled bool, token string) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Session.
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/session", h.Session)

	// Posts and reactions.
	r.Get("/posts", h.ListPosts)
	r.Post("/posts", h.CreatePost)
	r.Get("/posts/{postID}", h.GetPost)
	r.Delete("/posts/{postID}", h.DeletePost)
	r.Post("/posts/{postID}/answers", h.AddAnswer)
	r.Post("/posts/{postID}/bookmark", h.AddBookmark)
	r.Post("/posts/{postID}/answers/{answerIndex}/like", h.AddLike)

	// Stats and classification.
	r.Get("/users/{username}/stats", h.UserStats)
	r.Get("/stats", h.CommunityStats)
	r.Get("/timeline", h.Timeline)
	r.Get("/categories", h.Categories)
	r.Post("/categorize", h.Categorize)

	return r
}
