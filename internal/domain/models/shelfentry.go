// internal/domain/models/shelfentry.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shelf types. Transitions between them are unrestricted; only the edge
// into or out of ShelfRead affects the owner's yearly read counter.
const (
	ShelfWantToRead = "want-to-read"
	ShelfReading    = "reading"
	ShelfRead       = "read"
)

// ValidShelfType reports whether s names one of the three shelves.
func ValidShelfType(s string) bool {
	switch s {
	case ShelfWantToRead, ShelfReading, ShelfRead:
		return true
	}
	return false
}

// ShelfEntry records one user's relationship to one book, with a reading
// progress marker. A unique index on (user_email, book_id) guarantees at
// most one entry per pair.
//
// The Book* fields are a snapshot copied from the book at upsert time so
// shelf listings render without a lookup per row. They are display data
// only; the authoritative record stays in the books collection.
type ShelfEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"user_email" json:"user_email"`
	BookID    primitive.ObjectID `bson:"book_id" json:"book_id"`

	ShelfType string `bson:"shelf_type" json:"shelf_type"` // want-to-read | reading | read
	Progress  int    `bson:"progress" json:"progress"`     // 0..BookTotalPages

	BookTitle      string `bson:"book_title" json:"book_title"`
	BookAuthor     string `bson:"book_author,omitempty" json:"book_author,omitempty"`
	BookGenre      string `bson:"book_genre,omitempty" json:"book_genre,omitempty"`
	BookCoverURL   string `bson:"book_cover_url,omitempty" json:"book_cover_url,omitempty"`
	BookTotalPages int    `bson:"book_total_pages" json:"book_total_pages"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
