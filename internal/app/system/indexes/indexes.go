// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

The two compound unique indexes are load-bearing: (book_id, user_email) on
reviews and (user_email, book_id) on shelf_entries are what make the
"at most one per pair" invariants hold under concurrent upserts.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureBooks(ctx, db); err != nil {
		problems = append(problems, "books: "+err.Error())
	}
	if err := ensureGenres(ctx, db); err != nil {
		problems = append(problems, "genres: "+err.Error())
	}
	if err := ensureReviews(ctx, db); err != nil {
		problems = append(problems, "reviews: "+err.Error())
	}
	if err := ensureShelfEntries(ctx, db); err != nil {
		problems = append(problems, "shelf_entries: "+err.Error())
	}
	if err := ensureTutorials(ctx, db); err != nil {
		problems = append(problems, "tutorials: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with the
// same keys already exists under a different name (or options differ).
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", name))

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// An equivalent index created under a different name is fine.
			if isOptionsConflictErr(err) {
				zap.L().Warn("index options conflict, keeping existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", name),
					zap.Error(err))
				continue
			}
			errs = append(errs, name+": "+err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("uniq_email"), Unique: boolPtr(true)},
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("by_role")},
		},
	})
}

func ensureBooks(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("books"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("by_title_ci")},
		},
		{
			Keys:    bson.D{{Key: "genre", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("by_genre")},
		},
		{
			Keys:    bson.D{{Key: "average_rating", Value: -1}},
			Options: &options.IndexOptions{Name: strPtr("by_rating_desc")},
		},
	})
}

func ensureGenres(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("genres"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("uniq_name_ci"), Unique: boolPtr(true)},
		},
	})
}

func ensureReviews(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("reviews"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "book_id", Value: 1}, {Key: "user_email", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("uniq_book_user"), Unique: boolPtr(true)},
		},
		{
			Keys:    bson.D{{Key: "book_id", Value: 1}, {Key: "status", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("by_book_status")},
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "last_updated", Value: -1}},
			Options: &options.IndexOptions{Name: strPtr("by_status_updated")},
		},
	})
}

func ensureShelfEntries(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("shelf_entries"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_email", Value: 1}, {Key: "book_id", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("uniq_user_book"), Unique: boolPtr(true)},
		},
		{
			Keys:    bson.D{{Key: "user_email", Value: 1}, {Key: "shelf_type", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("by_user_shelf")},
		},
		{
			Keys:    bson.D{{Key: "book_id", Value: 1}},
			Options: &options.IndexOptions{Name: strPtr("by_book")},
		},
	})
}

func ensureTutorials(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("tutorials"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: &options.IndexOptions{Name: strPtr("by_created_desc")},
		},
	})
}
