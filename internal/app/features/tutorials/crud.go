package tutorials

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/paging"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

type tutorialRequest struct {
	Title    string `json:"title"`
	VideoURL string `json:"video_url"`
	Content  string `json:"content"`
}

// ServeList handles GET /tutorials, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Tutorials.List(ctx, paging.ParseLimit(r), paging.ParseSkip(r))
	if err != nil {
		h.Log.Error("tutorial list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}

// ServeGet handles GET /tutorials/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid tutorial id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, err := h.Tutorials.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, http.StatusNotFound, "tutorial not found")
		return
	}
	if err != nil {
		h.Log.Error("tutorial lookup failed", zap.String("tutorial_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, t)
}

// HandleCreate handles POST /tutorials (admin only). The store sanitizes
// the HTML content on the way in.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tutorialRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Tutorials.Create(ctx, models.Tutorial{
		Title:    req.Title,
		VideoURL: req.VideoURL,
		Content:  req.Content,
	})
	if err != nil {
		h.Log.Error("tutorial create failed", zap.String("title", req.Title), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /tutorials/{id} (admin only).
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid tutorial id")
		return
	}

	var req tutorialRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Tutorials.Update(ctx, id, req.Title, req.VideoURL, req.Content)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.Error(w, http.StatusNotFound, "tutorial not found")
		return
	}
	if err != nil {
		h.Log.Error("tutorial update failed", zap.String("tutorial_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "tutorial updated"})
}

// HandleDelete handles DELETE /tutorials/{id} (admin only).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid tutorial id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Tutorials.Delete(ctx, id)
	if err != nil {
		h.Log.Error("tutorial delete failed", zap.String("tutorial_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "tutorial not found")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "tutorial deleted"})
}
