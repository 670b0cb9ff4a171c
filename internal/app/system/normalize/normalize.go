// Package normalize provides canonical forms for user-supplied fields so
// lookups and unique indexes behave consistently regardless of how a value
// was typed.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are the user key
// throughout the API (reviews and shelf entries reference users by email),
// so every write and every lookup must pass through here.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value ("user", "admin").
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a status value ("active", "blocked").
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ShelfType lowercases and trims a shelf type so "Read" and "read" land in
// the same shelf.
func ShelfType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
