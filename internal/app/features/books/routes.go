// internal/app/features/books/routes.go
package books

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts all book routes under the path where this router is
// mounted (typically "/books" from bootstrap). Browsing is open; catalog
// writes are admin only.
func Routes(h *Handler, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Get("/{id}/reviews", h.ServeReviews)

	r.Group(func(ar chi.Router) {
		ar.Use(adminOnly)

		ar.Post("/", h.HandleCreate)
		ar.Patch("/{id}", h.HandleUpdate)
		ar.Delete("/{id}", h.HandleDelete)
	})

	return r
}
