package bookstore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	bookstore "github.com/bookwormhq/bookworm-server/internal/app/store/books"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestCreate_ZeroesDerivedCounters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := bookstore.New(db)

	b, err := store.Create(ctx, models.Book{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "Sci-Fi",
		TotalPages:    412,
		AverageRating: 4.9,
		TotalReviews:  120,
		ShelvedCount:  30,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if b.AverageRating != 0 || b.TotalReviews != 0 || b.ShelvedCount != 0 {
		t.Errorf("derived counters not zeroed: avg=%v reviews=%d shelved=%d",
			b.AverageRating, b.TotalReviews, b.ShelvedCount)
	}
	if b.TitleCI != "dune" {
		t.Errorf("title_ci: got %q, want %q", b.TitleCI, "dune")
	}
}

func TestList_SearchAndGenreFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := bookstore.New(db)

	seed := []models.Book{
		{Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi"},
		{Title: "Dune Messiah", Author: "Frank Herbert", Genre: "Sci-Fi"},
		{Title: "Emma", Author: "Jane Austen", Genre: "Classic"},
	}
	for _, b := range seed {
		if _, err := store.Create(ctx, b); err != nil {
			t.Fatalf("seed %q: %v", b.Title, err)
		}
	}

	// Case-insensitive substring search on the title.
	got, err := store.List(ctx, bookstore.ListFilter{Search: "dUnE"}, 50, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("search results: got %d, want 2", len(got))
	}

	got, err = store.List(ctx, bookstore.ListFilter{Genre: "Classic"}, 50, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Emma" {
		t.Errorf("genre filter: got %v", got)
	}

	// A regex metacharacter in the search is literal text, not a pattern.
	got, err = store.List(ctx, bookstore.ListFilter{Search: "dune.*"}, 50, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("metacharacter search: got %d results, want 0", len(got))
	}
}

func TestTopRated_SkipsUnreviewed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := bookstore.New(db)

	mk := func(title string, avg float64, reviews int) {
		b, err := store.Create(ctx, models.Book{Title: title, Author: "A"})
		if err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
		_, err = db.Collection("books").UpdateOne(ctx,
			bson.M{"_id": b.ID},
			bson.M{"$set": bson.M{"average_rating": avg, "total_reviews": reviews}})
		if err != nil {
			t.Fatalf("seed rating for %q: %v", title, err)
		}
	}
	mk("Silent", 0, 0)
	mk("Good", 4.0, 3)
	mk("Great", 4.8, 2)

	got, err := store.TopRated(ctx, 10)
	if err != nil {
		t.Fatalf("TopRated: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("results: got %d, want 2", len(got))
	}
	if got[0].Title != "Great" || got[1].Title != "Good" {
		t.Errorf("order: got %q, %q", got[0].Title, got[1].Title)
	}
}

func TestUpdateFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := bookstore.New(db)

	b, err := store.Create(ctx, models.Book{Title: "Dune", Author: "Frank Herbert"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = store.UpdateFields(ctx, b.ID, bookstore.Update{
		Title:      "Dune (Revised)",
		Author:     "Frank Herbert",
		Genre:      "Sci-Fi",
		TotalPages: 500,
	})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	got, err := store.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Dune (Revised)" || got.TotalPages != 500 {
		t.Errorf("after update: title=%q pages=%d", got.Title, got.TotalPages)
	}
	if got.TitleCI != "dune (revised)" {
		t.Errorf("title_ci: got %q", got.TitleCI)
	}
	if got.UpdatedAt == nil {
		t.Error("updated_at not set")
	}

	err = store.UpdateFields(ctx, primitive.NewObjectID(), bookstore.Update{Title: "X", Author: "Y"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("unknown book: got %v, want ErrNoDocuments", err)
	}
}

func TestCountByGenre(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := bookstore.New(db)

	for _, g := range []string{"Sci-Fi", "Sci-Fi", "Classic"} {
		if _, err := store.Create(ctx, models.Book{Title: "T", Author: "A", Genre: g}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, err := store.CountByGenre(ctx)
	if err != nil {
		t.Fatalf("CountByGenre: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	if rows[0].Genre != "Sci-Fi" || rows[0].Count != 2 {
		t.Errorf("top genre: got %+v", rows[0])
	}
}
