package books

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	bookstore "github.com/bookwormhq/bookworm-server/internal/app/store/books"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/paging"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

// ServeList handles GET /books.
//
// Query parameters: search (case-insensitive title substring), genre
// (exact name), limit, skip.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	filter := bookstore.ListFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Genre:  strings.TrimSpace(r.URL.Query().Get("genre")),
	}

	list, err := h.Books.List(ctx, filter, paging.ParseLimit(r), paging.ParseSkip(r))
	if err != nil {
		h.Log.Error("book list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}
	httpjson.Write(w, http.StatusOK, list)
}
