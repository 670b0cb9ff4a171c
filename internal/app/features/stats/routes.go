// internal/app/features/stats/routes.go
package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookwormhq/bookworm-server/internal/app/system/guard"
)

// Routes mounts the stats routes under the path where this router is
// mounted (typically "/stats" from bootstrap).
func Routes(h *Handler, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(guard.RequireCaller)

		pr.Get("/me", h.ServeMyStats)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(adminOnly)

		ar.Get("/admin", h.ServeAdminStats)
	})

	return r
}
