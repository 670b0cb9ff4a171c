// Package authz resolves the caller's identity for a request.
//
// The API is stateless: callers identify themselves with the X-User-Email
// header, matching the upstream client which sends the signed-in reader's
// email with every call. Authorization decisions (admin-only routes) are
// made by the guard middleware at the routing boundary; nothing below the
// handlers re-checks identity.
package authz

import (
	"net/http"

	"github.com/bookwormhq/bookworm-server/internal/app/system/inputval"
	"github.com/bookwormhq/bookworm-server/internal/app/system/normalize"
)

// HeaderUserEmail carries the caller's identity.
const HeaderUserEmail = "X-User-Email"

// CallerEmail returns the normalized caller email and a found flag.
// ok=false means the header was absent or not a plausible email; callers
// can trust that ok=true implies a normalized, validated address.
func CallerEmail(r *http.Request) (string, bool) {
	email := normalize.Email(r.Header.Get(HeaderUserEmail))
	if email == "" || !inputval.IsValidEmail(email) {
		return "", false
	}
	return email, true
}
