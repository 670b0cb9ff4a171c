// internal/app/features/tutorials/routes.go
package tutorials

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts all tutorial routes under the path where this router is
// mounted (typically "/tutorials" from bootstrap). Reads are open; writes
// are admin only.
func Routes(h *Handler, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	r.Group(func(ar chi.Router) {
		ar.Use(adminOnly)

		ar.Post("/", h.HandleCreate)
		ar.Put("/{id}", h.HandleUpdate)
		ar.Delete("/{id}", h.HandleDelete)
	})

	return r
}
