package reviews

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/store/aggregates"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/paging"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

// ServeModerationList handles GET /reviews?status= (admin only). Defaults
// to the pending queue, oldest first so the backlog drains in order.
func (h *Handler) ServeModerationList(w http.ResponseWriter, r *http.Request) {
	status := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))
	if status == "" {
		status = models.ReviewPending
	}
	if status != models.ReviewPending && status != models.ReviewApproved {
		httpjson.Error(w, http.StatusBadRequest, `status must be "pending" or "approved"`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	list, err := h.Reviews.ListByStatus(ctx, status, paging.ParseLimit(r), paging.ParseSkip(r))
	if err != nil {
		h.Log.Error("moderation list failed", zap.String("status", status), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}

// HandleApprove handles PATCH /reviews/{id}/approve (admin only). The
// book's rating aggregate absorbs the review as part of the same call.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid review id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Maintainer.ApproveReview(ctx, id)
	switch {
	case errors.Is(err, aggregates.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "review not found")
	case err != nil:
		h.Log.Error("review approve failed", zap.String("review_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
	default:
		httpjson.Write(w, http.StatusOK, map[string]string{"message": "review approved"})
	}
}

// HandleDelete handles DELETE /reviews/{id} (admin only).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid review id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Maintainer.DeleteReview(ctx, id)
	switch {
	case errors.Is(err, aggregates.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "review not found")
	case err != nil:
		h.Log.Error("review delete failed", zap.String("review_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
	default:
		httpjson.Write(w, http.StatusOK, map[string]string{"message": "review deleted"})
	}
}
