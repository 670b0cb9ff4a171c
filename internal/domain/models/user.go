// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a reader account. Accounts are created on first login
// with role "user"; admins are promoted afterwards.
//
// NOTE:
//   - BooksReadThisYear is a derived counter maintained by the aggregates
//     package when shelf entries move into or out of the "read" state.
//     Handlers must never write it directly.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	PhotoURL   string             `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Role       string             `bson:"role" json:"role"`     // user | admin
	Status     string             `bson:"status" json:"status"` // active | blocked

	AnnualGoal        int `bson:"annual_goal" json:"annual_goal"`
	BooksReadThisYear int `bson:"books_read_this_year" json:"books_read_this_year"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsAdmin reports whether this user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// IsBlocked reports whether this user has been blocked by an admin.
func (u *User) IsBlocked() bool {
	return u.Status == "blocked"
}
