// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	booksfeature "github.com/bookwormhq/bookworm-server/internal/app/features/books"
	genresfeature "github.com/bookwormhq/bookworm-server/internal/app/features/genres"
	healthfeature "github.com/bookwormhq/bookworm-server/internal/app/features/health"
	reviewsfeature "github.com/bookwormhq/bookworm-server/internal/app/features/reviews"
	shelffeature "github.com/bookwormhq/bookworm-server/internal/app/features/shelf"
	statsfeature "github.com/bookwormhq/bookworm-server/internal/app/features/stats"
	tutorialsfeature "github.com/bookwormhq/bookworm-server/internal/app/features/tutorials"
	usersfeature "github.com/bookwormhq/bookworm-server/internal/app/features/users"
	"github.com/bookwormhq/bookworm-server/internal/app/system/guard"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, schema setup, and
// Startup hooks have completed. Every feature is a chi subrouter mounted
// here; admin-only routes sit behind guard.RequireAdmin inside each
// feature's Routes function, so this file only decides what exists, not
// who may call it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase
	adminOnly := guard.RequireAdmin(db, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-Email"},
		MaxAge:         300,
	}))

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	usersHandler := usersfeature.NewHandler(db, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler, adminOnly))

	booksHandler := booksfeature.NewHandler(db, logger)
	r.Mount("/books", booksfeature.Routes(booksHandler, adminOnly))

	genresHandler := genresfeature.NewHandler(db, logger)
	r.Mount("/genres", genresfeature.Routes(genresHandler, adminOnly))

	reviewsHandler := reviewsfeature.NewHandler(db, logger)
	r.Mount("/reviews", reviewsfeature.Routes(reviewsHandler, adminOnly))

	shelfHandler := shelffeature.NewHandler(db, logger)
	r.Mount("/shelf", shelffeature.Routes(shelfHandler))

	tutorialsHandler := tutorialsfeature.NewHandler(db, logger)
	r.Mount("/tutorials", tutorialsfeature.Routes(tutorialsHandler, adminOnly))

	statsHandler := statsfeature.NewHandler(db, logger)
	r.Mount("/stats", statsfeature.Routes(statsHandler, adminOnly))

	return r, nil
}
