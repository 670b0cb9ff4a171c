package shelf

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/store/aggregates"
	"github.com/bookwormhq/bookworm-server/internal/app/system/authz"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

type progressRequest struct {
	Progress int `json:"progress"`
}

// HandleProgress handles PATCH /shelf/{id}/progress. Hitting the last
// page moves the entry to the "read" shelf automatically.
func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	email, _ := authz.CallerEmail(r)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid shelf entry id")
		return
	}

	var req progressRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.ownsEntry(ctx, w, id, email) {
		return
	}

	entry, err := h.Maintainer.AdvanceProgress(ctx, id, req.Progress)
	switch {
	case errors.Is(err, aggregates.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "shelf entry not found")
	case err != nil:
		h.Log.Error("progress update failed", zap.String("entry_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
	default:
		httpjson.Write(w, http.StatusOK, entry)
	}
}

// HandleRemove handles DELETE /shelf/{id}. Removing an entry that is
// already gone succeeds without touching any counter.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	email, _ := authz.CallerEmail(r)

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid shelf entry id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entry, err := h.Shelves.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Write(w, http.StatusOK, map[string]string{"message": "shelf entry removed"})
		return
	}
	if err != nil {
		h.Log.Error("shelf entry lookup failed", zap.String("entry_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	if entry.UserEmail != email {
		httpjson.Error(w, http.StatusNotFound, "shelf entry not found")
		return
	}

	if err := h.Maintainer.RemoveShelfEntry(ctx, id); err != nil {
		h.Log.Error("shelf entry remove failed", zap.String("entry_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "shelf entry removed"})
}

// ownsEntry answers whether the entry exists and belongs to the caller,
// writing the error response itself when it does not. Entries owned by
// someone else read as absent so ids cannot be probed.
func (h *Handler) ownsEntry(ctx context.Context, w http.ResponseWriter, id primitive.ObjectID, email string) bool {
	entry, err := h.Shelves.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, http.StatusNotFound, "shelf entry not found")
		return false
	}
	if err != nil {
		h.Log.Error("shelf entry lookup failed", zap.String("entry_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return false
	}
	if entry.UserEmail != email {
		httpjson.Error(w, http.StatusNotFound, "shelf entry not found")
		return false
	}
	return true
}
