// internal/domain/models/book.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a catalog entry created and edited by admins.
//
// AverageRating, TotalReviews, and ShelvedCount are derived fields owned by
// the aggregates package:
//   - AverageRating/TotalReviews are recomputed from approved reviews on
//     every review mutation (mean of ratings, rounded to one decimal).
//   - ShelvedCount moves by atomic increments when shelf entries are
//     created or removed, never by full rescans.
type Book struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped

	Author      string `bson:"author" json:"author"`
	Genre       string `bson:"genre" json:"genre"`
	CoverURL    string `bson:"cover_url,omitempty" json:"cover_url,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	TotalPages  int    `bson:"total_pages" json:"total_pages"`

	AverageRating float64 `bson:"average_rating" json:"average_rating"` // [0,5], one decimal
	TotalReviews  int     `bson:"total_reviews" json:"total_reviews"`
	ShelvedCount  int     `bson:"shelved_count" json:"shelved_count"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
