package reviewstore_test

import (
	"testing"

	reviewstore "github.com/bookwormhq/bookworm-server/internal/app/store/reviews"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestListApprovedForBook(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	store := reviewstore.New(db)

	book := f.CreateBook(ctx, "Dune", "Frank Herbert", "Sci-Fi", 412)
	other := f.CreateBook(ctx, "Emma", "Jane Austen", "Classic", 320)

	f.CreateReview(ctx, book.ID, "a@x.com", 5, models.ReviewApproved)
	f.CreateReview(ctx, book.ID, "b@x.com", 3, models.ReviewPending)
	f.CreateReview(ctx, other.ID, "a@x.com", 4, models.ReviewApproved)

	got, err := store.ListApprovedForBook(ctx, book.ID, 50, 0)
	if err != nil {
		t.Fatalf("ListApprovedForBook: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("length: got %d, want 1", len(got))
	}
	if got[0].UserEmail != "a@x.com" || got[0].Status != models.ReviewApproved {
		t.Errorf("row: %+v", got[0])
	}
}

func TestListByStatus_OldestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	store := reviewstore.New(db)

	book := f.CreateBook(ctx, "Dune", "Frank Herbert", "Sci-Fi", 412)
	first := f.CreateReview(ctx, book.ID, "a@x.com", 5, models.ReviewPending)
	second := f.CreateReview(ctx, book.ID, "b@x.com", 2, models.ReviewPending)
	f.CreateReview(ctx, book.ID, "c@x.com", 4, models.ReviewApproved)

	got, err := store.ListByStatus(ctx, models.ReviewPending, 50, 0)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("length: got %d, want 2", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("queue order: got %s, %s", got[0].UserEmail, got[1].UserEmail)
	}
}

func TestGetForBookAndUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	store := reviewstore.New(db)

	book := f.CreateBook(ctx, "Dune", "Frank Herbert", "Sci-Fi", 412)
	f.CreateReview(ctx, book.ID, "a@x.com", 5, models.ReviewApproved)

	got, err := store.GetForBookAndUser(ctx, book.ID, "a@x.com")
	if err != nil {
		t.Fatalf("GetForBookAndUser: %v", err)
	}
	if got.Rating != 5 {
		t.Errorf("rating: got %d, want 5", got.Rating)
	}
}
