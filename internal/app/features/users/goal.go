package users

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/authz"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

type goalRequest struct {
	AnnualGoal int `json:"annual_goal"`
}

// HandleSetGoal handles PATCH /users/goal. The goal always belongs to the
// caller; there is no setting someone else's goal.
func (h *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	email, _ := authz.CallerEmail(r)

	var req goalRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.AnnualGoal < 0 {
		httpjson.Error(w, http.StatusBadRequest, "annual_goal must be >= 0")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Users.SetAnnualGoal(ctx, email, req.AnnualGoal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		h.Log.Error("set annual goal failed", zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]int{"annual_goal": req.AnnualGoal})
}
