// internal/app/features/tutorials/handler.go
package tutorials

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	tutorialstore "github.com/bookwormhq/bookworm-server/internal/app/store/tutorials"
)

type Handler struct {
	DB        *mongo.Database
	Log       *zap.Logger
	Tutorials *tutorialstore.Store
}

// NewHandler constructs a tutorials feature handler bound to the given
// Mongo database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Tutorials: tutorialstore.New(db),
	}
}
