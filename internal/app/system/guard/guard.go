// Package guard provides the route-level authorization middleware.
//
// Authorization happens entirely at this boundary: handlers behind
// RequireAdmin can assume the caller is an active admin, and the store and
// aggregates layers never re-check identity.
package guard

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/bookwormhq/bookworm-server/internal/app/store/users"
	"github.com/bookwormhq/bookworm-server/internal/app/system/authz"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

// RequireCaller rejects requests without a valid caller identity.
func RequireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := authz.CallerEmail(r); !ok {
			httpjson.Error(w, http.StatusUnauthorized, "missing or invalid "+authz.HeaderUserEmail+" header")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects callers whose user record is not an active admin.
// Unknown emails and blocked accounts are both forbidden.
func RequireAdmin(db *mongo.Database, log *zap.Logger) func(http.Handler) http.Handler {
	users := userstore.New(db)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := authz.CallerEmail(r)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "missing or invalid "+authz.HeaderUserEmail+" header")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			defer cancel()

			isAdmin, err := users.IsActiveAdmin(ctx, email)
			if err != nil {
				log.Error("admin check failed", zap.String("email", email), zap.Error(err))
				httpjson.Error(w, http.StatusServiceUnavailable, "authorization check unavailable")
				return
			}
			if !isAdmin {
				httpjson.Error(w, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
