// Package inputval validates request input before any store mutation is
// attempted. Handlers reject bad input with 400 responses; nothing in the
// store or aggregates layer should ever see an out-of-range value.
package inputval

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/validate"

	"github.com/bookwormhq/bookworm-server/internal/domain/models"
)

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// IsValidEmail reports whether s looks like a plausible email address.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return validate.SimpleEmailValid(s)
}

// IsValidRating reports whether n is an allowed review rating.
func IsValidRating(n int) bool {
	return n >= MinRating && n <= MaxRating
}

// IsValidShelfType reports whether s names one of the three shelves.
// Callers should normalize first.
func IsValidShelfType(s string) bool {
	return models.ValidShelfType(s)
}

// IsValidRole reports whether s is an assignable user role.
func IsValidRole(s string) bool {
	return s == "user" || s == "admin"
}

// IsValidStatus reports whether s is an assignable user status.
func IsValidStatus(s string) bool {
	return s == "active" || s == "blocked"
}

// ClampProgress clamps a page-progress value to [0, totalPages].
// Negative input becomes 0; totalPages <= 0 yields 0 for any input.
func ClampProgress(progress, totalPages int) int {
	if progress < 0 || totalPages <= 0 {
		return 0
	}
	if progress > totalPages {
		return totalPages
	}
	return progress
}
