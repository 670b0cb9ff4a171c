package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/inputval"
	"github.com/bookwormhq/bookworm-server/internal/app/system/normalize"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

type roleRequest struct {
	Role string `json:"role"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// HandleSetRole handles PATCH /users/{id}/role (admin only).
func (h *Handler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req roleRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	role := normalize.Role(req.Role)
	if !inputval.IsValidRole(role) {
		httpjson.Error(w, http.StatusBadRequest, `role must be "user" or "admin"`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.SetRole(ctx, id, role); err != nil {
		h.writeSetFieldError(w, "set role", id, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"role": role})
}

// HandleSetStatus handles PATCH /users/{id}/status (admin only). Blocking
// a user takes effect on their next request; there is no session to
// revoke.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req statusRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	status := normalize.Status(req.Status)
	if !inputval.IsValidStatus(status) {
		httpjson.Error(w, http.StatusBadRequest, `status must be "active" or "blocked"`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.SetStatus(ctx, id, status); err != nil {
		h.writeSetFieldError(w, "set status", id, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": status})
}

func (h *Handler) writeSetFieldError(w http.ResponseWriter, op string, id primitive.ObjectID, err error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, http.StatusNotFound, "user not found")
		return
	}
	h.Log.Error(op+" failed", zap.String("user_id", id.Hex()), zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, "db error")
}
