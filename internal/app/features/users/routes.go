// internal/app/features/users/routes.go
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookwormhq/bookworm-server/internal/app/system/guard"
)

// Routes mounts all user routes under the path where this router is
// mounted (typically "/users" from bootstrap).
//
// adminOnly is the guard middleware for privileged routes; everything
// else only needs a caller identity.
func Routes(h *Handler, adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// First-login upsert: no identity check, registration is open.
	r.Post("/", h.HandleRegister)

	r.Group(func(pr chi.Router) {
		pr.Use(guard.RequireCaller)

		pr.Get("/{email}", h.ServeGet)
		pr.Get("/{email}/admin", h.ServeAdminProbe)
		pr.Patch("/goal", h.HandleSetGoal)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(adminOnly)

		ar.Get("/", h.ServeList)
		ar.Patch("/{id}/role", h.HandleSetRole)
		ar.Patch("/{id}/status", h.HandleSetStatus)
	})

	return r
}
