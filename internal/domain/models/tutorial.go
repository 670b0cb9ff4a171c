// internal/domain/models/tutorial.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tutorial is editorial content (reading guides, how-to videos) managed by
// admins. Content is stored as sanitized HTML.
type Tutorial struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	VideoURL string             `bson:"video_url,omitempty" json:"video_url,omitempty"`
	Content  string             `bson:"content,omitempty" json:"content,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
