package users_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/features/users"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestHandleRegister_CreatesThenReturnsExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := users.NewHandler(db, zap.NewNop())

	body := map[string]any{
		"full_name":   "Ada Lovelace",
		"email":       "Ada@Example.com",
		"annual_goal": 12,
	}

	req := testutil.NewJSONRequest(t, "POST", "/users", body)
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: got %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var created models.User
	testutil.DecodeJSON(t, rec, &created)
	if created.Email != "ada@example.com" {
		t.Errorf("email: got %q, want normalized lowercase", created.Email)
	}
	if created.Role != "user" || created.Status != "active" {
		t.Errorf("defaults: role=%q status=%q", created.Role, created.Status)
	}

	// Registering again returns the same account, not a duplicate.
	req = testutil.NewJSONRequest(t, "POST", "/users", body)
	rec = httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("second register: got %d, want %d", rec.Code, http.StatusOK)
	}
	var existing models.User
	testutil.DecodeJSON(t, rec, &existing)
	if existing.ID != created.ID {
		t.Errorf("second register returned a different account")
	}
}

func TestHandleRegister_RejectsBadEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := users.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/users", map[string]any{
		"full_name": "No Email",
		"email":     "not-an-email",
	})
	rec := httptest.NewRecorder()
	handler.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeAdminProbe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	handler := users.NewHandler(db, zap.NewNop())

	f.CreateAdmin(ctx, "Root", "root@example.com")

	for _, c := range []struct {
		email string
		want  bool
	}{
		{"root@example.com", true},
		{"ghost@example.com", false},
	} {
		req := testutil.NewRequest("GET", "/users/"+c.email+"/admin", nil)
		req = testutil.AsUser(req, c.email)
		req = testutil.WithChiURLParam(req, "email", c.email)
		rec := httptest.NewRecorder()
		handler.ServeAdminProbe(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: got %d, want 200", c.email, rec.Code)
		}
		var resp map[string]bool
		testutil.DecodeJSON(t, rec, &resp)
		if resp["is_admin"] != c.want {
			t.Errorf("%s: is_admin=%v, want %v", c.email, resp["is_admin"], c.want)
		}
	}
}

func TestHandleSetGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	handler := users.NewHandler(db, zap.NewNop())

	f.CreateReader(ctx, "Ada", "ada@example.com")

	req := testutil.NewJSONRequest(t, "PATCH", "/users/goal", map[string]int{"annual_goal": 30})
	req = testutil.AsUser(req, "ada@example.com")
	rec := httptest.NewRecorder()
	handler.HandleSetGoal(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	req = testutil.NewJSONRequest(t, "PATCH", "/users/goal", map[string]int{"annual_goal": -1})
	req = testutil.AsUser(req, "ada@example.com")
	rec = httptest.NewRecorder()
	handler.HandleSetGoal(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative goal: got %d, want 400", rec.Code)
	}
}
