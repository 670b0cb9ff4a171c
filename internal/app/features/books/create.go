package books

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

type bookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	CoverURL    string `json:"cover_url"`
	Description string `json:"description"`
	TotalPages  int    `json:"total_pages"`
}

func (req *bookRequest) validate() string {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(req.Author) == "" {
		return "author is required"
	}
	if req.TotalPages < 0 {
		return "total_pages must be >= 0"
	}
	return ""
}

// HandleCreate handles POST /books (admin only).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	created, err := h.Books.Create(ctx, models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		CoverURL:    req.CoverURL,
		Description: req.Description,
		TotalPages:  req.TotalPages,
	})
	if err != nil {
		h.Log.Error("book create failed", zap.String("title", req.Title), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}
