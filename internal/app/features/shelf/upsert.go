package shelf

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/store/aggregates"
	"github.com/bookwormhq/bookworm-server/internal/app/system/authz"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

type upsertRequest struct {
	BookID    string `json:"book_id"`
	ShelfType string `json:"shelf_type"`
	Progress  int    `json:"progress"`
}

// HandleUpsert handles POST /shelf.
//
// One entry per (caller, book): posting again moves the existing entry to
// the requested shelf instead of adding a second one. The response is the
// stored entry after the move.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	email, _ := authz.CallerEmail(r)

	var req upsertRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	bookID, err := primitive.ObjectIDFromHex(req.BookID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid book id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entry, err := h.Maintainer.UpsertShelfEntry(ctx, aggregates.ShelfInput{
		UserEmail: email,
		BookID:    bookID,
		ShelfType: req.ShelfType,
		Progress:  req.Progress,
	})
	switch {
	case errors.Is(err, aggregates.ErrInvalidShelfType):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, aggregates.ErrBookNotFound):
		httpjson.Error(w, http.StatusNotFound, "book not found")
	case err != nil:
		h.Log.Error("shelf upsert failed",
			zap.String("book_id", bookID.Hex()), zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
	default:
		httpjson.Write(w, http.StatusOK, entry)
	}
}
