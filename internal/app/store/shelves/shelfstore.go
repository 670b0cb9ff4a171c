package shelfstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookwormhq/bookworm-server/internal/app/system/normalize"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

// Store is the read side of the shelf_entries collection. Mutations go
// through the aggregates package, which owns the shelved-count and
// books-read bookkeeping.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("shelf_entries")}
}

// GetByID loads a shelf entry by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ShelfEntry, error) {
	var e models.ShelfEntry
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListForUser returns a user's shelf entries, most recently updated first.
// shelfType narrows to one shelf when non-empty.
func (s *Store) ListForUser(ctx context.Context, userEmail, shelfType string, limit, skip int64) ([]models.ShelfEntry, error) {
	filter := bson.M{"user_email": normalize.Email(userEmail)}
	if shelfType != "" {
		filter["shelf_type"] = shelfType
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.ShelfEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ShelfCount is one row of CountByShelfForUser.
type ShelfCount struct {
	ShelfType string `bson:"_id" json:"shelf_type"`
	Count     int    `bson:"count" json:"count"`
}

// CountByShelfForUser groups one user's entries by shelf for the reader
// dashboard.
func (s *Store) CountByShelfForUser(ctx context.Context, userEmail string) ([]ShelfCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user_email", Value: normalize.Email(userEmail)}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$shelf_type"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []ShelfCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
