package guard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/system/guard"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireCaller(t *testing.T) {
	mw := guard.RequireCaller(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no header: got %d, want 401", rec.Code)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req = testutil.AsUser(req, "not-an-email")
	rec = httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad email: got %d, want 401", rec.Code)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req = testutil.AsUser(req, "reader@example.com")
	rec = httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid email: got %d, want 200", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)

	f.CreateAdmin(ctx, "Root", "root@example.com")
	f.CreateReader(ctx, "Plain", "plain@example.com")
	f.CreateUser(ctx, "Blocked Admin", "exadmin@example.com", "admin", "blocked")

	mw := guard.RequireAdmin(db, zap.NewNop())(okHandler())

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"no identity", "", http.StatusUnauthorized},
		{"active admin", "root@example.com", http.StatusOK},
		{"regular user", "plain@example.com", http.StatusForbidden},
		{"blocked admin", "exadmin@example.com", http.StatusForbidden},
		{"unknown email", "ghost@example.com", http.StatusForbidden},
	}
	for _, c := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		if c.email != "" {
			req = testutil.AsUser(req, c.email)
		}
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != c.want {
			t.Errorf("%s: got %d, want %d", c.name, rec.Code, c.want)
		}
	}
}
