// internal/app/features/genres/routes.go
package genres

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts all genre routes under the path where this router is
// mounted (typically "/genres" from bootstrap). Reads are open; writes
// are admin only.
func Routes(h *Handler, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)

	r.Group(func(ar chi.Router) {
		ar.Use(adminOnly)

		ar.Post("/", h.HandleCreate)
		ar.Put("/{id}", h.HandleUpdate)
		ar.Delete("/{id}", h.HandleDelete)
	})

	return r
}
