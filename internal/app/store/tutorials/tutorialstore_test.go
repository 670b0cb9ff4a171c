package tutorialstore_test

import (
	"strings"
	"testing"

	tutorialstore "github.com/bookwormhq/bookworm-server/internal/app/store/tutorials"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestCreate_SanitizesContent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := tutorialstore.New(db)

	created, err := store.Create(ctx, models.Tutorial{
		Title:   "Getting Started",
		Content: `<p>Welcome</p><script>alert("xss")</script>`,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if strings.Contains(created.Content, "<script>") {
		t.Errorf("script tag survived sanitization: %q", created.Content)
	}
	if !strings.Contains(created.Content, "<p>Welcome</p>") {
		t.Errorf("benign markup lost: %q", created.Content)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := tutorialstore.New(db)

	created, err := store.Create(ctx, models.Tutorial{Title: "Draft"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := store.Update(ctx, created.ID, "Published", "https://videos.example.com/1", "<p>Body</p>"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Published" || got.VideoURL != "https://videos.example.com/1" {
		t.Errorf("after update: %+v", got)
	}
	if got.UpdatedAt == nil {
		t.Error("updated_at not set")
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted: got %d, want 1", deleted)
	}
}
