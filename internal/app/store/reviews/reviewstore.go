package reviewstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

// Store is the read side of the reviews collection. All review mutations go
// through the aggregates package so the derived book counters can never
// drift from the review records.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reviews")}
}

// GetByID loads a review by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var rv models.Review
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

// ListApprovedForBook returns a book's approved reviews, newest first.
// Pending reviews are never shown to readers.
func (s *Store) ListApprovedForBook(ctx context.Context, bookID primitive.ObjectID, limit, skip int64) ([]models.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "last_updated", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := s.c.Find(ctx, bson.M{"book_id": bookID, "status": models.ReviewApproved}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListByStatus returns reviews with the given status for the moderation
// queue, oldest first so admins work through submissions in order.
func (s *Store) ListByStatus(ctx context.Context, status string, limit, skip int64) ([]models.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "last_updated", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := s.c.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetForBookAndUser loads the single review one user wrote for one book.
func (s *Store) GetForBookAndUser(ctx context.Context, bookID primitive.ObjectID, userEmail string) (*models.Review, error) {
	var rv models.Review
	if err := s.c.FindOne(ctx, bson.M{"book_id": bookID, "user_email": userEmail}).Decode(&rv); err != nil {
		return nil, err
	}
	return &rv, nil
}
