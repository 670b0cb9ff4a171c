// internal/app/features/shelf/handler.go
package shelf

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/store/aggregates"
	shelfstore "github.com/bookwormhq/bookworm-server/internal/app/store/shelves"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Shelves    *shelfstore.Store
	Maintainer *aggregates.Maintainer
}

// NewHandler constructs a shelf feature handler. Every mutation goes
// through the aggregates Maintainer so shelved_count and the caller's
// yearly read counter stay in step with the entries.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Shelves:    shelfstore.New(db),
		Maintainer: aggregates.New(db, logger),
	}
}
