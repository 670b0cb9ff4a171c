// internal/app/features/reviews/routes.go
package reviews

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookwormhq/bookworm-server/internal/app/system/guard"
)

// Routes mounts all review routes under the path where this router is
// mounted (typically "/reviews" from bootstrap). Submitting needs a
// caller identity; moderation is admin only. Approved reviews are read
// through GET /books/{id}/reviews in the books feature.
func Routes(h *Handler, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(guard.RequireCaller)

		pr.Post("/", h.HandleSubmit)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(adminOnly)

		ar.Get("/", h.ServeModerationList)
		ar.Patch("/{id}/approve", h.HandleApprove)
		ar.Delete("/{id}", h.HandleDelete)
	})

	return r
}
