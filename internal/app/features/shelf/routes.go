// internal/app/features/shelf/routes.go
package shelf

import (
	"github.com/go-chi/chi/v5"

	"github.com/bookwormhq/bookworm-server/internal/app/system/guard"
)

// Routes mounts all shelf routes under the path where this router is
// mounted (typically "/shelf" from bootstrap). A shelf belongs to its
// caller; every route needs an identity and handlers reject entries owned
// by someone else.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(guard.RequireCaller)

		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleUpsert)
		pr.Patch("/{id}/progress", h.HandleProgress)
		pr.Delete("/{id}", h.HandleRemove)
	})

	return r
}
