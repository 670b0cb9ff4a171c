package books

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

// HandleDelete handles DELETE /books/{id} (admin only). The Maintainer
// removes the book's reviews and shelf entries along with the book itself,
// so no request can observe a review pointing at a missing book.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid book id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Maintainer.DeleteBookCascade(ctx, id); err != nil {
		h.Log.Error("book cascade delete failed", zap.String("book_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "book deleted"})
}
