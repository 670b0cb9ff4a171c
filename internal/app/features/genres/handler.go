// internal/app/features/genres/handler.go
package genres

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	genrestore "github.com/bookwormhq/bookworm-server/internal/app/store/genres"
)

type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Genres *genrestore.Store
}

// NewHandler constructs a genres feature handler bound to the given Mongo
// database and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		Genres: genrestore.New(db),
	}
}
