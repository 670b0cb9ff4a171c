// internal/app/features/books/handler.go
package books

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/store/aggregates"
	bookstore "github.com/bookwormhq/bookworm-server/internal/app/store/books"
	reviewstore "github.com/bookwormhq/bookworm-server/internal/app/store/reviews"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Books      *bookstore.Store
	Reviews    *reviewstore.Store
	Maintainer *aggregates.Maintainer
}

// NewHandler constructs a books feature handler bound to the given Mongo
// database and logger. Deletes go through the aggregates Maintainer so the
// cascade into reviews and shelf entries is never skipped.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Books:      bookstore.New(db),
		Reviews:    reviewstore.New(db),
		Maintainer: aggregates.New(db, logger),
	}
}
