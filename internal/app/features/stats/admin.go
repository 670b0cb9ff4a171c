package stats

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	bookstore "github.com/bookwormhq/bookworm-server/internal/app/store/books"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

const topRatedLimit = 5

type adminStatsResponse struct {
	TotalUsers     int64 `json:"total_users"`
	TotalBooks     int64 `json:"total_books"`
	TotalReviews   int64 `json:"total_reviews"`
	PendingReviews int64 `json:"pending_reviews"`
	TotalGenres    int64 `json:"total_genres"`
	TotalTutorials int64 `json:"total_tutorials"`

	TopRated    []models.Book          `json:"top_rated"`
	GenreCounts []bookstore.GenreCount `json:"genre_counts"`
}

// ServeAdminStats handles GET /stats/admin (admin only): the dashboard
// numbers, the highest-rated books, and the catalog's genre distribution.
func (h *Handler) ServeAdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var resp adminStatsResponse
	counts := []struct {
		collection string
		filter     bson.M
		dst        *int64
	}{
		{"users", bson.M{}, &resp.TotalUsers},
		{"books", bson.M{}, &resp.TotalBooks},
		{"reviews", bson.M{}, &resp.TotalReviews},
		{"reviews", bson.M{"status": models.ReviewPending}, &resp.PendingReviews},
		{"genres", bson.M{}, &resp.TotalGenres},
		{"tutorials", bson.M{}, &resp.TotalTutorials},
	}
	for _, c := range counts {
		n, err := h.DB.Collection(c.collection).CountDocuments(ctx, c.filter)
		if err != nil {
			h.Log.Error("stats count failed", zap.String("collection", c.collection), zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "db error")
			return
		}
		*c.dst = n
	}

	topRated, err := h.Books.TopRated(ctx, topRatedLimit)
	if err != nil {
		h.Log.Error("top-rated query failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	resp.TopRated = topRated

	genreCounts, err := h.Books.CountByGenre(ctx)
	if err != nil {
		h.Log.Error("genre distribution query failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	resp.GenreCounts = genreCounts

	httpjson.Write(w, http.StatusOK, resp)
}
