// internal/app/features/stats/handler.go
package stats

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookstore "github.com/bookwormhq/bookworm-server/internal/app/store/books"
	shelfstore "github.com/bookwormhq/bookworm-server/internal/app/store/shelves"
	userstore "github.com/bookwormhq/bookworm-server/internal/app/store/users"
)

type Handler struct {
	DB      *mongo.Database
	Log     *zap.Logger
	Books   *bookstore.Store
	Shelves *shelfstore.Store
	Users   *userstore.Store
}

// NewHandler constructs a stats feature handler bound to the given Mongo
// database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Log:     logger,
		Books:   bookstore.New(db),
		Shelves: shelfstore.New(db),
		Users:   userstore.New(db),
	}
}
