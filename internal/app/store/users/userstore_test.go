package userstore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	userstore "github.com/bookwormhq/bookworm-server/internal/app/store/users"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestCreate_DefaultsAndNormalization(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	u, err := store.Create(ctx, models.User{
		FullName:          "  Ada Lovelace  ",
		Email:             "Ada@Example.COM",
		BooksReadThisYear: 99,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if u.Email != "ada@example.com" {
		t.Errorf("email: got %q, want %q", u.Email, "ada@example.com")
	}
	if u.FullName != "Ada Lovelace" {
		t.Errorf("full name: got %q, want %q", u.FullName, "Ada Lovelace")
	}
	if u.Role != "user" || u.Status != "active" {
		t.Errorf("defaults: got role=%q status=%q", u.Role, u.Status)
	}
	if u.BooksReadThisYear != 0 {
		t.Errorf("books read: got %d, want 0 (caller-supplied value must be ignored)", u.BooksReadThisYear)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	if _, err := store.Create(ctx, models.User{FullName: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := store.Create(ctx, models.User{FullName: "Imposter", Email: "ADA@example.com"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	if _, err := store.Create(ctx, models.User{FullName: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := store.GetByEmail(ctx, "ADA@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.FullName != "Ada" {
		t.Errorf("full name: got %q, want %q", u.FullName, "Ada")
	}

	if _, err := store.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("unknown email: got %v, want ErrNoDocuments", err)
	}
}

func TestIsActiveAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	f.CreateAdmin(ctx, "Root", "root@example.com")
	f.CreateReader(ctx, "Plain", "plain@example.com")
	f.CreateUser(ctx, "Blocked Admin", "exadmin@example.com", "admin", "blocked")

	cases := []struct {
		email string
		want  bool
	}{
		{"root@example.com", true},
		{"plain@example.com", false},
		{"exadmin@example.com", false},
		{"ghost@example.com", false},
	}
	for _, c := range cases {
		got, err := store.IsActiveAdmin(ctx, c.email)
		if err != nil {
			t.Fatalf("IsActiveAdmin(%s): %v", c.email, err)
		}
		if got != c.want {
			t.Errorf("IsActiveAdmin(%s): got %v, want %v", c.email, got, c.want)
		}
	}
}

func TestSetRoleAndStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	u, err := store.Create(ctx, models.User{FullName: "Ada", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.SetRole(ctx, u.ID, "admin"); err != nil {
		t.Fatalf("SetRole: %v", err)
	}
	if err := store.SetStatus(ctx, u.ID, "blocked"); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Role != "admin" || got.Status != "blocked" {
		t.Errorf("after updates: role=%q status=%q", got.Role, got.Status)
	}

	if err := store.SetRole(ctx, u.ID, "superuser"); err == nil {
		t.Error("SetRole accepted an unknown role")
	}
}

func TestSetAnnualGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	if _, err := store.Create(ctx, models.User{FullName: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.SetAnnualGoal(ctx, "ada@example.com", 24); err != nil {
		t.Fatalf("SetAnnualGoal: %v", err)
	}
	u, err := store.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if u.AnnualGoal != 24 {
		t.Errorf("annual goal: got %d, want 24", u.AnnualGoal)
	}

	if err := store.SetAnnualGoal(ctx, "ghost@example.com", 5); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("unknown user: got %v, want ErrNoDocuments", err)
	}
}

func TestPromoteToAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	if _, err := store.Create(ctx, models.User{FullName: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.PromoteToAdmin(ctx, "ada@example.com"); err != nil {
		t.Fatalf("PromoteToAdmin: %v", err)
	}
	u, err := store.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if !u.IsAdmin() {
		t.Errorf("role after promotion: got %q, want admin", u.Role)
	}

	// Unknown emails are a silent no-op.
	if err := store.PromoteToAdmin(ctx, "ghost@example.com"); err != nil {
		t.Errorf("promotion of unknown email: %v", err)
	}
}
