// internal/domain/models/review.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review statuses. New and resubmitted reviews start as pending and only
// count toward a book's rating once an admin approves them.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
)

// Review is one user's review of one book. A unique index on
// (book_id, user_email) guarantees at most one review per pair; submitting
// again replaces the earlier review.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookID    primitive.ObjectID `bson:"book_id" json:"book_id"`
	UserEmail string             `bson:"user_email" json:"user_email"`
	UserName  string             `bson:"user_name,omitempty" json:"user_name,omitempty"`

	Rating  int    `bson:"rating" json:"rating"` // 1..5
	Comment string `bson:"comment,omitempty" json:"comment,omitempty"`

	// BookTitle is denormalized for moderation lists so the admin view
	// doesn't need a join per row.
	BookTitle string `bson:"book_title,omitempty" json:"book_title,omitempty"`

	Status      string    `bson:"status" json:"status"` // pending | approved
	LastUpdated time.Time `bson:"last_updated" json:"last_updated"`
}
