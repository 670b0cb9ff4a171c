package bookstore

import (
	"context"
	"regexp"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookwormhq/bookworm-server/internal/app/system/normalize"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("books")}
}

// GetByID loads a book by ObjectID. Returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var b models.Book
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new book. Derived counters start at zero no matter what
// the caller supplied; only the aggregates layer moves them afterwards.
func (s *Store) Create(ctx context.Context, b models.Book) (models.Book, error) {
	b.ID = primitive.NewObjectID()
	b.Title = normalize.Name(b.Title)
	b.TitleCI = text.Fold(b.Title)
	b.Author = normalize.Name(b.Author)
	if b.TotalPages < 0 {
		b.TotalPages = 0
	}
	b.AverageRating = 0
	b.TotalReviews = 0
	b.ShelvedCount = 0
	b.CreatedAt = time.Now()
	b.UpdatedAt = nil

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Book{}, err
	}
	return b, nil
}

// ListFilter narrows List results. Zero values mean "no constraint".
type ListFilter struct {
	Search string // case-insensitive substring of the title
	Genre  string // exact genre name
}

// List returns books matching the filter, newest first.
func (s *Store) List(ctx context.Context, f ListFilter, limit, skip int64) ([]models.Book, error) {
	filter := bson.M{}
	if f.Search != "" {
		// Match against the folded title so the search is accent- and
		// case-insensitive, mirroring the regex search of the upstream API.
		filter["title_ci"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(text.Fold(f.Search))}}
	}
	if f.Genre != "" {
		filter["genre"] = f.Genre
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var books []models.Book
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// TopRated returns the highest-rated books that have at least one approved
// review.
func (s *Store) TopRated(ctx context.Context, limit int64) ([]models.Book, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "average_rating", Value: -1}, {Key: "total_reviews", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{"total_reviews": bson.M{"$gt": 0}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var books []models.Book
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Update holds the admin-editable fields of a book. Derived counters are
// deliberately absent.
type Update struct {
	Title       string
	Author      string
	Genre       string
	CoverURL    string
	Description string
	TotalPages  int
}

// UpdateFields applies an admin edit. Returns mongo.ErrNoDocuments when the
// book does not exist.
func (s *Store) UpdateFields(ctx context.Context, id primitive.ObjectID, upd Update) error {
	if upd.TotalPages < 0 {
		upd.TotalPages = 0
	}
	title := normalize.Name(upd.Title)
	now := time.Now()
	set := bson.M{
		"title":       title,
		"title_ci":    text.Fold(title),
		"author":      normalize.Name(upd.Author),
		"genre":       upd.Genre,
		"cover_url":   upd.CoverURL,
		"description": upd.Description,
		"total_pages": upd.TotalPages,
		"updated_at":  &now,
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GenreCount is one row of CountByGenre.
type GenreCount struct {
	Genre string `bson:"_id" json:"genre"`
	Count int    `bson:"count" json:"count"`
}

// CountByGenre groups the catalog by genre for the admin dashboard chart.
func (s *Store) CountByGenre(ctx context.Context) ([]GenreCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []GenreCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

