// Package aggregates keeps the derived counters on books and users
// consistent with the authoritative review and shelf records.
//
// Three invariants live here:
//
//   - a book's average_rating/total_reviews always reflect its approved
//     reviews (recomputed in full on every review mutation, rounded to one
//     decimal, 0/0 with no approved reviews);
//   - a book's shelved_count equals the number of existing shelf entries
//     referencing it (moved only by atomic increments on entry create and
//     delete, never recomputed by scan);
//   - a user's books_read_this_year counts their entries currently on the
//     "read" shelf (moved only on transitions across the read edge, in
//     both directions, and on entry delete).
//
// All counter deltas are issued as $inc so concurrent requests touching the
// same book or user cannot lose updates. The rating recompute reads the
// current approved set and overwrites the aggregate; two overlapping
// submissions can briefly publish a value computed from a stale read, and
// the next write to that book's reviews repairs it.
//
// Every review or shelf mutation in the application must go through this
// package; handlers never write the derived fields directly.
package aggregates

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/htmlsanitize"
	"github.com/bookwormhq/bookworm-server/internal/app/system/inputval"
	"github.com/bookwormhq/bookworm-server/internal/app/system/normalize"
	"github.com/bookwormhq/bookworm-server/internal/app/system/txn"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

var (
	// ErrNotFound is returned when a referenced review or shelf entry does
	// not exist.
	ErrNotFound = errors.New("not found")
	// ErrBookNotFound is returned when the referenced book does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrInvalidRating is returned for ratings outside [1,5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidShelfType is returned for unknown shelf types.
	ErrInvalidShelfType = errors.New(`shelf type must be "want-to-read"|"reading"|"read"`)
)

// Maintainer applies review and shelf mutations together with their
// counter side effects.
type Maintainer struct {
	db      *mongo.Database
	log     *zap.Logger
	books   *mongo.Collection
	users   *mongo.Collection
	reviews *mongo.Collection
	shelves *mongo.Collection
}

func New(db *mongo.Database, log *zap.Logger) *Maintainer {
	return &Maintainer{
		db:      db,
		log:     log,
		books:   db.Collection("books"),
		users:   db.Collection("users"),
		reviews: db.Collection("reviews"),
		shelves: db.Collection("shelf_entries"),
	}
}

// ReviewInput is a validated-on-entry review submission.
type ReviewInput struct {
	BookID    primitive.ObjectID
	UserEmail string
	UserName  string
	Rating    int
	Comment   string
}

// RecordOrUpdateReview upserts the single review keyed by (book, user) and
// recomputes the book's rating aggregate. Every submission lands as
// "pending": a resubmitted review drops out of the aggregate until an
// admin approves it again, so edits cannot bypass moderation.
func (m *Maintainer) RecordOrUpdateReview(ctx context.Context, in ReviewInput) (models.Review, error) {
	if !inputval.IsValidRating(in.Rating) {
		return models.Review{}, ErrInvalidRating
	}
	in.UserEmail = normalize.Email(in.UserEmail)

	book, err := m.bookByID(ctx, in.BookID)
	if err != nil {
		return models.Review{}, err
	}

	now := time.Now()
	filter := bson.M{"book_id": in.BookID, "user_email": in.UserEmail}
	update := bson.M{
		"$set": bson.M{
			"rating":       in.Rating,
			"comment":      htmlsanitize.PlainText(in.Comment),
			"user_name":    normalize.Name(in.UserName),
			"book_title":   book.Title,
			"status":       models.ReviewPending,
			"last_updated": now,
		},
		"$setOnInsert": bson.M{
			"book_id":    in.BookID,
			"user_email": in.UserEmail,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var rv models.Review
	if err := m.reviews.FindOneAndUpdate(ctx, filter, update, opts).Decode(&rv); err != nil {
		return models.Review{}, err
	}

	// A resubmission may have knocked an approved review back to pending,
	// so the aggregate must be refreshed even though the new status never
	// adds to it.
	if err := m.recomputeBookRating(ctx, in.BookID); err != nil {
		return rv, err
	}
	return rv, nil
}

// ApproveReview marks a review approved and refreshes the book's rating
// aggregate.
func (m *Maintainer) ApproveReview(ctx context.Context, reviewID primitive.ObjectID) error {
	var rv models.Review
	err := m.reviews.FindOneAndUpdate(ctx,
		bson.M{"_id": reviewID},
		bson.M{"$set": bson.M{"status": models.ReviewApproved}},
	).Decode(&rv)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return m.recomputeBookRating(ctx, rv.BookID)
}

// DeleteReview removes a review and refreshes the book's rating aggregate.
func (m *Maintainer) DeleteReview(ctx context.Context, reviewID primitive.ObjectID) error {
	var rv models.Review
	err := m.reviews.FindOneAndDelete(ctx, bson.M{"_id": reviewID}).Decode(&rv)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return m.recomputeBookRating(ctx, rv.BookID)
}

// ShelfInput is a validated-on-entry shelf upsert.
type ShelfInput struct {
	UserEmail string
	BookID    primitive.ObjectID
	ShelfType string
	Progress  int
}

// UpsertShelfEntry creates or moves the single shelf entry keyed by
// (user, book).
//
// Side effects, each applied exactly once per qualifying transition:
//   - first creation of the entry increments the book's shelved_count;
//   - landing on "read" from any other shelf (or from nothing) increments
//     the user's books_read_this_year;
//   - leaving "read" decrements it again.
func (m *Maintainer) UpsertShelfEntry(ctx context.Context, in ShelfInput) (models.ShelfEntry, error) {
	in.ShelfType = normalize.ShelfType(in.ShelfType)
	if !inputval.IsValidShelfType(in.ShelfType) {
		return models.ShelfEntry{}, ErrInvalidShelfType
	}
	in.UserEmail = normalize.Email(in.UserEmail)

	book, err := m.bookByID(ctx, in.BookID)
	if err != nil {
		return models.ShelfEntry{}, err
	}

	// "read" means finished: progress snaps to the full page count no
	// matter what the caller sent.
	progress := inputval.ClampProgress(in.Progress, book.TotalPages)
	if in.ShelfType == models.ShelfRead {
		progress = book.TotalPages
	}

	now := time.Now()
	filter := bson.M{"user_email": in.UserEmail, "book_id": in.BookID}
	update := bson.M{
		"$set": bson.M{
			"shelf_type":       in.ShelfType,
			"progress":         progress,
			"book_title":       book.Title,
			"book_author":      book.Author,
			"book_genre":       book.Genre,
			"book_cover_url":   book.CoverURL,
			"book_total_pages": book.TotalPages,
			"updated_at":       now,
		},
		"$setOnInsert": bson.M{
			"user_email": in.UserEmail,
			"book_id":    in.BookID,
		},
	}

	// Returning the pre-image makes one call serve as both the upsert and
	// the created/updated discriminator: no prior document means the entry
	// was just created.
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var prior models.ShelfEntry
	outcome := outcomeUpdated
	err = m.shelves.FindOneAndUpdate(ctx, filter, update, opts).Decode(&prior)
	switch {
	case err == mongo.ErrNoDocuments:
		outcome = outcomeCreated
	case err != nil:
		return models.ShelfEntry{}, err
	}

	if outcome == outcomeCreated {
		if err := m.incShelvedCount(ctx, in.BookID, +1); err != nil {
			return models.ShelfEntry{}, err
		}
	}

	priorShelf := ""
	if outcome == outcomeUpdated {
		priorShelf = prior.ShelfType
	}
	if err := m.applyReadTransition(ctx, in.UserEmail, priorShelf, in.ShelfType); err != nil {
		return models.ShelfEntry{}, err
	}

	var entry models.ShelfEntry
	if err := m.shelves.FindOne(ctx, filter).Decode(&entry); err != nil {
		return models.ShelfEntry{}, err
	}
	return entry, nil
}

// AdvanceProgress updates a shelf entry's page marker, clamped to the
// book's page count. Reaching the last page auto-completes the entry: it
// moves to the "read" shelf through the same transition bookkeeping as
// UpsertShelfEntry.
func (m *Maintainer) AdvanceProgress(ctx context.Context, entryID primitive.ObjectID, newProgress int) (models.ShelfEntry, error) {
	var entry models.ShelfEntry
	err := m.shelves.FindOne(ctx, bson.M{"_id": entryID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return models.ShelfEntry{}, ErrNotFound
	}
	if err != nil {
		return models.ShelfEntry{}, err
	}

	progress := inputval.ClampProgress(newProgress, entry.BookTotalPages)
	completed := entry.BookTotalPages > 0 &&
		progress >= entry.BookTotalPages &&
		entry.ShelfType != models.ShelfRead

	now := time.Now()
	set := bson.M{"progress": progress, "updated_at": now}
	if completed {
		set["shelf_type"] = models.ShelfRead
	}

	if _, err := m.shelves.UpdateOne(ctx, bson.M{"_id": entryID}, bson.M{"$set": set}); err != nil {
		return models.ShelfEntry{}, err
	}

	if completed {
		if err := m.applyReadTransition(ctx, entry.UserEmail, entry.ShelfType, models.ShelfRead); err != nil {
			return models.ShelfEntry{}, err
		}
		entry.ShelfType = models.ShelfRead
	}
	entry.Progress = progress
	entry.UpdatedAt = now
	return entry, nil
}

// RemoveShelfEntry deletes a shelf entry and reverses its contribution to
// the counters. Removing an entry that is already gone is a no-op: no
// counter may move for a nonexistent entity.
func (m *Maintainer) RemoveShelfEntry(ctx context.Context, entryID primitive.ObjectID) error {
	var entry models.ShelfEntry
	err := m.shelves.FindOneAndDelete(ctx, bson.M{"_id": entryID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return err
	}

	if err := m.incShelvedCount(ctx, entry.BookID, -1); err != nil {
		return err
	}
	return m.applyReadTransition(ctx, entry.UserEmail, entry.ShelfType, "")
}

// DeleteBookCascade removes a book together with every review and shelf
// entry referencing it. Dependents go first so no request can observe a
// dangling reference; no counters elsewhere need adjusting because the
// referencing records are removed, not orphaned.
func (m *Maintainer) DeleteBookCascade(ctx context.Context, bookID primitive.ObjectID) error {
	return txn.Run(ctx, m.db, m.log, func(ctx context.Context) error {
		if _, err := m.reviews.DeleteMany(ctx, bson.M{"book_id": bookID}); err != nil {
			return err
		}
		if _, err := m.shelves.DeleteMany(ctx, bson.M{"book_id": bookID}); err != nil {
			return err
		}
		if _, err := m.books.DeleteOne(ctx, bson.M{"_id": bookID}); err != nil {
			return err
		}
		return nil
	})
}

type upsertOutcome int

const (
	outcomeCreated upsertOutcome = iota
	outcomeUpdated
)

// recomputeBookRating rebuilds average_rating and total_reviews from the
// book's current approved reviews. Zero approved reviews writes 0/0; the
// mean is never evaluated on an empty set.
func (m *Maintainer) recomputeBookRating(ctx context.Context, bookID primitive.ObjectID) error {
	opts := options.Find().SetProjection(bson.M{"rating": 1})
	cur, err := m.reviews.Find(ctx, bson.M{"book_id": bookID, "status": models.ReviewApproved}, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	sum, count := 0, 0
	for cur.Next(ctx) {
		var row struct {
			Rating int `bson:"rating"`
		}
		if err := cur.Decode(&row); err != nil {
			return err
		}
		sum += row.Rating
		count++
	}
	if err := cur.Err(); err != nil {
		return err
	}

	avg := 0.0
	if count > 0 {
		avg = math.Round(float64(sum)/float64(count)*10) / 10
	}

	_, err = m.books.UpdateOne(ctx,
		bson.M{"_id": bookID},
		bson.M{"$set": bson.M{"average_rating": avg, "total_reviews": count}})
	if err != nil {
		m.log.Error("rating recompute write failed",
			zap.String("book_id", bookID.Hex()), zap.Error(err))
	}
	return err
}

// incShelvedCount moves a book's shelved_count by delta with an atomic
// increment, never read-modify-write.
func (m *Maintainer) incShelvedCount(ctx context.Context, bookID primitive.ObjectID, delta int) error {
	_, err := m.books.UpdateOne(ctx,
		bson.M{"_id": bookID},
		bson.M{"$inc": bson.M{"shelved_count": delta}})
	if err != nil {
		m.log.Error("shelved_count increment failed",
			zap.String("book_id", bookID.Hex()), zap.Int("delta", delta), zap.Error(err))
	}
	return err
}

// applyReadTransition owns the books_read_this_year bookkeeping for every
// entry point (shelf upsert, progress auto-completion, entry removal).
// Only crossing the "read" edge moves the counter: entering read from a
// non-read state (from may be "" for a new or deleted entry) adds one,
// leaving read subtracts one, re-saving read on read does nothing.
func (m *Maintainer) applyReadTransition(ctx context.Context, userEmail, from, to string) error {
	delta := 0
	if to == models.ShelfRead && from != models.ShelfRead {
		delta = +1
	}
	if from == models.ShelfRead && to != models.ShelfRead {
		delta = -1
	}
	if delta == 0 {
		return nil
	}

	_, err := m.users.UpdateOne(ctx,
		bson.M{"email": userEmail},
		bson.M{"$inc": bson.M{"books_read_this_year": delta}})
	if err != nil {
		m.log.Error("books_read_this_year increment failed",
			zap.String("user_email", userEmail), zap.Int("delta", delta), zap.Error(err))
	}
	return err
}

func (m *Maintainer) bookByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var b models.Book
	err := m.books.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
