package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

// Fixtures provides helper methods for creating test data. Documents are
// inserted directly, bypassing the stores, so tests can set up states the
// public API would refuse (for example an already-approved review).
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role and status.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role, status string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		Role:       role,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateReader creates an active regular user.
func (f *Fixtures) CreateReader(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "user", "active")
}

// CreateAdmin creates an active admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "admin", "active")
}

// CreateBlockedUser creates a blocked regular user.
func (f *Fixtures) CreateBlockedUser(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "user", "blocked")
}

// CreateBook creates a test book with zeroed derived counters.
func (f *Fixtures) CreateBook(ctx context.Context, title, author, genre string, totalPages int) models.Book {
	f.t.Helper()

	book := models.Book{
		ID:         primitive.NewObjectID(),
		Title:      title,
		TitleCI:    text.Fold(title),
		Author:     author,
		Genre:      genre,
		TotalPages: totalPages,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("books").InsertOne(ctx, book); err != nil {
		f.t.Fatalf("failed to create test book: %v", err)
	}
	return book
}

// CreateGenre creates a test genre.
func (f *Fixtures) CreateGenre(ctx context.Context, name string) models.Genre {
	f.t.Helper()

	genre := models.Genre{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("genres").InsertOne(ctx, genre); err != nil {
		f.t.Fatalf("failed to create test genre: %v", err)
	}
	return genre
}

// CreateReview creates a test review in the given status, bypassing the
// moderation flow.
func (f *Fixtures) CreateReview(ctx context.Context, bookID primitive.ObjectID, userEmail string, rating int, status string) models.Review {
	f.t.Helper()

	review := models.Review{
		ID:          primitive.NewObjectID(),
		BookID:      bookID,
		UserEmail:   userEmail,
		Rating:      rating,
		Status:      status,
		LastUpdated: time.Now().UTC(),
	}

	if _, err := f.db.Collection("reviews").InsertOne(ctx, review); err != nil {
		f.t.Fatalf("failed to create test review: %v", err)
	}
	return review
}

// CreateShelfEntry creates a test shelf entry without touching any
// counter; tests that need consistent counters should go through the
// aggregates Maintainer instead.
func (f *Fixtures) CreateShelfEntry(ctx context.Context, userEmail string, book models.Book, shelfType string, progress int) models.ShelfEntry {
	f.t.Helper()

	entry := models.ShelfEntry{
		ID:             primitive.NewObjectID(),
		UserEmail:      userEmail,
		BookID:         book.ID,
		ShelfType:      shelfType,
		Progress:       progress,
		BookTitle:      book.Title,
		BookAuthor:     book.Author,
		BookGenre:      book.Genre,
		BookTotalPages: book.TotalPages,
		UpdatedAt:      time.Now().UTC(),
	}

	if _, err := f.db.Collection("shelf_entries").InsertOne(ctx, entry); err != nil {
		f.t.Fatalf("failed to create test shelf entry: %v", err)
	}
	return entry
}

// CreateTutorial creates a test tutorial.
func (f *Fixtures) CreateTutorial(ctx context.Context, title, content string) models.Tutorial {
	f.t.Helper()

	tut := models.Tutorial{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("tutorials").InsertOne(ctx, tut); err != nil {
		f.t.Fatalf("failed to create test tutorial: %v", err)
	}
	return tut
}
