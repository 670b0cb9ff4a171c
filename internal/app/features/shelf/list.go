package shelf

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/authz"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/inputval"
	"github.com/bookwormhq/bookworm-server/internal/app/system/normalize"
	"github.com/bookwormhq/bookworm-server/internal/app/system/paging"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

// ServeList handles GET /shelf: the caller's entries, most recently
// touched first. An optional ?type= narrows to one shelf.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	email, _ := authz.CallerEmail(r)

	shelfType := normalize.ShelfType(strings.TrimSpace(r.URL.Query().Get("type")))
	if shelfType != "" && !inputval.IsValidShelfType(shelfType) {
		httpjson.Error(w, http.StatusBadRequest, `type must be "want-to-read", "reading" or "read"`)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Shelves.ListForUser(ctx, email, shelfType, paging.ParseLimit(r), paging.ParseSkip(r))
	if err != nil {
		h.Log.Error("shelf list failed", zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}
