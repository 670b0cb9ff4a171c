package tutorialstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookwormhq/bookworm-server/internal/app/system/htmlsanitize"
	"github.com/bookwormhq/bookworm-server/internal/app/system/normalize"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tutorials")}
}

// Create inserts a new tutorial. Content is sanitized on the way in so
// stored HTML is always safe to serve.
func (s *Store) Create(ctx context.Context, t models.Tutorial) (models.Tutorial, error) {
	t.ID = primitive.NewObjectID()
	t.Title = normalize.Name(t.Title)
	t.Content = htmlsanitize.Sanitize(t.Content)
	t.CreatedAt = time.Now()
	t.UpdatedAt = nil

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Tutorial{}, err
	}
	return t, nil
}

// GetByID loads a tutorial by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Tutorial, error) {
	var t models.Tutorial
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns tutorials, newest first.
func (s *Store) List(ctx context.Context, limit, skip int64) ([]models.Tutorial, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tutorials []models.Tutorial
	if err := cur.All(ctx, &tutorials); err != nil {
		return nil, err
	}
	return tutorials, nil
}

// Update replaces the editable fields. Returns mongo.ErrNoDocuments when
// the tutorial does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, title, videoURL, content string) error {
	now := time.Now()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":      normalize.Name(title),
			"video_url":  videoURL,
			"content":    htmlsanitize.Sanitize(content),
			"updated_at": &now,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a tutorial by ID; deleting an absent tutorial is not an
// error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
