package reviews

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/store/aggregates"
	"github.com/bookwormhq/bookworm-server/internal/app/system/authz"
	"github.com/bookwormhq/bookworm-server/internal/app/system/httpjson"
	"github.com/bookwormhq/bookworm-server/internal/app/system/timeouts"
)

type submitRequest struct {
	BookID  string `json:"book_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// HandleSubmit handles POST /reviews.
//
// One review per (book, caller): a second submission replaces the first
// and the review returns to pending until an admin approves it again. The
// response carries the stored review, including its moderation status, so
// clients can tell the user it is awaiting approval.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	email, _ := authz.CallerEmail(r)

	var req submitRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	bookID, err := primitive.ObjectIDFromHex(req.BookID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid book id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The display name on the review comes from the account record, not
	// the request, so a caller cannot sign someone else's name.
	userName := ""
	if u, err := h.Users.GetByEmail(ctx, email); err == nil {
		userName = u.FullName
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.Error("review submit: user lookup failed", zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
		return
	}

	rv, err := h.Maintainer.RecordOrUpdateReview(ctx, aggregates.ReviewInput{
		BookID:    bookID,
		UserEmail: email,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	switch {
	case errors.Is(err, aggregates.ErrInvalidRating):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, aggregates.ErrBookNotFound):
		httpjson.Error(w, http.StatusNotFound, "book not found")
	case err != nil:
		h.Log.Error("review submit failed",
			zap.String("book_id", bookID.Hex()), zap.String("email", email), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "db error")
	default:
		httpjson.Write(w, http.StatusOK, rv)
	}
}
