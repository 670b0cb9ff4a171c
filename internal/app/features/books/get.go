package books

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/paging"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

// ServeGet handles GET /books/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid book id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	b, err := h.Books.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.Log.Error("book lookup failed", zap.String("book_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, b)
}

// ServeReviews handles GET /books/{id}/reviews: the approved reviews of a
// book, newest first. Pending reviews stay invisible here no matter who
// asks; moderation reads go through the reviews feature.
func (h *Handler) ServeReviews(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid book id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Reviews.ListApprovedForBook(ctx, id, paging.ParseLimit(r), paging.ParseSkip(r))
	if err != nil {
		h.Log.Error("book reviews list failed", zap.String("book_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}
