package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/bookwormhq/bookworm-server/internal/app/store/users"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/inputval"
	"github.com/bookwormhq/bookworm-server/internal/app/system/normalize"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type registerRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	PhotoURL   string `json:"photo_url"`
	AnnualGoal int    `json:"annual_goal"`
}

// HandleRegister handles POST /users.
//
// This is the first-login upsert: an unseen email creates a fresh account
// with role "user", a known email returns the existing account unchanged.
// Clients call it on every login, so it must be safe to repeat.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	email := normalize.Email(req.Email)
	if !inputval.IsValidEmail(email) {
		httpjson.Error(w, http.StatusBadRequest, "invalid email")
		return
	}
	if req.AnnualGoal < 0 {
		httpjson.Error(w, http.StatusBadRequest, "annual_goal must be >= 0")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if existing, err := h.Users.GetByEmail(ctx, email); err == nil {
		httpjson.Write(w, http.StatusOK, existing)
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.Error("register: lookup failed", zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}

	created, err := h.Users.Create(ctx, models.User{
		FullName:   req.FullName,
		Email:      email,
		PhotoURL:   req.PhotoURL,
		AnnualGoal: req.AnnualGoal,
	})
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		// Lost a race with a concurrent first login; the account exists now.
		existing, gerr := h.Users.GetByEmail(ctx, email)
		if gerr != nil {
			httpjson.Error(w, http.StatusInternalServerError, "db error")
			return
		}
		httpjson.Write(w, http.StatusOK, existing)
		return
	}
	if err != nil {
		h.Log.Error("register: create failed", zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}
