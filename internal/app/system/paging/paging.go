// Package paging parses limit/skip query parameters for list endpoints.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 50

// MaxLimit caps how many rows one request may ask for.
const MaxLimit = 200

// ParseLimit extracts the "limit" query parameter, clamped to [1, MaxLimit].
// Returns DefaultLimit if absent or invalid.
func ParseLimit(r *http.Request) int64 {
	s := query.Get(r, "limit")
	if s == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return int64(n)
}

// ParseSkip extracts the "skip" query parameter. Returns 0 if absent or
// invalid.
func ParseSkip(r *http.Request) int64 {
	s := query.Get(r, "skip")
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return int64(n)
}
