package genres

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	genrestore "github.com/bookwormhq/bookworm-server/internal/app/store/genres"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

type genreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ServeList handles GET /genres. The full list, sorted by name; genres are
// a small reference collection so there is no paging.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := h.Genres.List(ctx)
	if err != nil {
		h.Log.Error("genre list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}

// HandleCreate handles POST /genres (admin only).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Genres.Create(ctx, models.Genre{
		Name:        req.Name,
		Description: req.Description,
	})
	if errors.Is(err, genrestore.ErrDuplicateName) {
		httpjson.Error(w, http.StatusConflict, "a genre with this name already exists")
		return
	}
	if err != nil {
		h.Log.Error("genre create failed", zap.String("name", req.Name), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /genres/{id} (admin only).
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid genre id")
		return
	}

	var req genreRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpjson.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Genres.Update(ctx, id, req.Name, req.Description)
	switch {
	case errors.Is(err, genrestore.ErrDuplicateName):
		httpjson.Error(w, http.StatusConflict, "a genre with this name already exists")
	case errors.Is(err, mongo.ErrNoDocuments):
		httpjson.Error(w, http.StatusNotFound, "genre not found")
	case err != nil:
		h.Log.Error("genre update failed", zap.String("genre_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
	default:
		httpjson.Write(w, http.StatusOK, map[string]string{"message": "genre updated"})
	}
}

// HandleDelete handles DELETE /genres/{id} (admin only). Books keep their
// genre string; deleting a genre only removes it from the browse filter.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid genre id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Genres.Delete(ctx, id)
	if err != nil {
		h.Log.Error("genre delete failed", zap.String("genre_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "genre not found")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "genre deleted"})
}
