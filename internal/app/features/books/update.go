package books

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookstore "github.com/bookwormhq/bookworm-server/internal/app/store/books"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

// HandleUpdate handles PATCH /books/{id} (admin only). Only the catalog
// fields are editable; the derived rating and shelf counters never pass
// through here.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid book id")
		return
	}

	var req bookRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpjson.Error(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Books.UpdateFields(ctx, id, bookstore.Update{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		CoverURL:    req.CoverURL,
		Description: req.Description,
		TotalPages:  req.TotalPages,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.Log.Error("book update failed", zap.String("book_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}

	updated, err := h.Books.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}
