// internal/app/features/reviews/handler.go
package reviews

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/store/aggregates"
	reviewstore "github.com/bookwormhq/bookworm-server/internal/app/store/reviews"
	userstore "github.com/bookwormhq/bookworm-server/internal/app/store/users"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Reviews    *reviewstore.Store
	Users      *userstore.Store
	Maintainer *aggregates.Maintainer
}

// NewHandler constructs a reviews feature handler. Every mutation goes
// through the aggregates Maintainer so the book's rating fields stay in
// step with the review records.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Reviews:    reviewstore.New(db),
		Users:      userstore.New(db),
		Maintainer: aggregates.New(db, logger),
	}
}
