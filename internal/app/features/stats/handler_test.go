package stats_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/features/stats"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestServeAdminStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	handler := stats.NewHandler(db, zap.NewNop())

	f.CreateReader(ctx, "Ada", "ada@example.com")
	book := f.CreateBook(ctx, "Dune", "Frank Herbert", "Sci-Fi", 412)
	f.CreateBook(ctx, "Emma", "Jane Austen", "Classic", 320)
	f.CreateReview(ctx, book.ID, "ada@example.com", 5, models.ReviewPending)
	f.CreateGenre(ctx, "Sci-Fi")

	req := testutil.NewRequest("GET", "/stats/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeAdminStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		TotalUsers     int64 `json:"total_users"`
		TotalBooks     int64 `json:"total_books"`
		PendingReviews int64 `json:"pending_reviews"`
		TotalGenres    int64 `json:"total_genres"`
		GenreCounts    []struct {
			Genre string `json:"genre"`
			Count int    `json:"count"`
		} `json:"genre_counts"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.TotalUsers != 1 || resp.TotalBooks != 2 || resp.PendingReviews != 1 || resp.TotalGenres != 1 {
		t.Errorf("counts: %+v", resp)
	}
	if len(resp.GenreCounts) != 2 {
		t.Errorf("genre distribution rows: got %d, want 2", len(resp.GenreCounts))
	}
}

func TestServeMyStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	handler := stats.NewHandler(db, zap.NewNop())

	user := f.CreateReader(ctx, "Ada", "ada@example.com")
	book := f.CreateBook(ctx, "Dune", "Frank Herbert", "Sci-Fi", 412)
	f.CreateShelfEntry(ctx, user.Email, book, models.ShelfReading, 100)

	req := testutil.NewRequest("GET", "/stats/me", nil)
	req = testutil.AsUser(req, "ada@example.com")
	rec := httptest.NewRecorder()
	handler.ServeMyStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		AnnualGoal        int `json:"annual_goal"`
		BooksReadThisYear int `json:"books_read_this_year"`
		ShelfCounts       []struct {
			ShelfType string `json:"shelf_type"`
			Count     int    `json:"count"`
		} `json:"shelf_counts"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if len(resp.ShelfCounts) != 1 || resp.ShelfCounts[0].ShelfType != models.ShelfReading {
		t.Errorf("shelf counts: %+v", resp.ShelfCounts)
	}

	// Unknown callers get a 404, not an empty dashboard.
	req = testutil.NewRequest("GET", "/stats/me", nil)
	req = testutil.AsUser(req, "ghost@example.com")
	rec = httptest.NewRecorder()
	handler.ServeMyStats(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown caller: got %d, want 404", rec.Code)
	}
}
