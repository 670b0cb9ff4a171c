package stats

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	shelfstore "github.com/bookwormhq/bookworm-server/internal/app/store/shelves"
	"github.com/bookwormhq/bookworm-server/internal/app/system/authz"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

type myStatsResponse struct {
	AnnualGoal        int                     `json:"annual_goal"`
	BooksReadThisYear int                     `json:"books_read_this_year"`
	ShelfCounts       []shelfstore.ShelfCount `json:"shelf_counts"`
}

// ServeMyStats handles GET /stats/me: the caller's yearly progress
// against their goal plus a per-shelf entry count.
func (h *Handler) ServeMyStats(w http.ResponseWriter, r *http.Request) {
	email, _ := authz.CallerEmail(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		h.Log.Error("stats user lookup failed", zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}

	shelfCounts, err := h.Shelves.CountByShelfForUser(ctx, email)
	if err != nil {
		h.Log.Error("shelf count query failed", zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}

	httpjson.Write(w, http.StatusOK, myStatsResponse{
		AnnualGoal:        u.AnnualGoal,
		BooksReadThisYear: u.BooksReadThisYear,
		ShelfCounts:       shelfCounts,
	})
}
