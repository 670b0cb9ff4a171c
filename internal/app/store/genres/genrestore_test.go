package genrestore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	genrestore "github.com/bookwormhq/bookworm-server/internal/app/store/genres"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestCreate_DuplicateNameIsCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := genrestore.New(db)

	if _, err := store.Create(ctx, models.Genre{Name: "Science Fiction"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := store.Create(ctx, models.Genre{Name: "SCIENCE FICTION"})
	if !errors.Is(err, genrestore.ErrDuplicateName) {
		t.Fatalf("got %v, want ErrDuplicateName", err)
	}
}

func TestListSortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := genrestore.New(db)

	for _, name := range []string{"Mystery", "Classic", "Sci-Fi"} {
		if _, err := store.Create(ctx, models.Genre{Name: name}); err != nil {
			t.Fatalf("seed %q: %v", name, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("length: got %d, want 3", len(got))
	}
	want := []string{"Classic", "Mystery", "Sci-Fi"}
	for i, g := range got {
		if g.Name != want[i] {
			t.Errorf("position %d: got %q, want %q", i, g.Name, want[i])
		}
	}
}

func TestUpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := genrestore.New(db)

	g, err := store.Create(ctx, models.Genre{Name: "Sci Fi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Update(ctx, g.ID, "Science Fiction", "Speculative futures"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := store.Update(ctx, primitive.NewObjectID(), "X", ""); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("unknown genre update: got %v, want ErrNoDocuments", err)
	}

	deleted, err := store.Delete(ctx, g.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted: got %d, want 1", deleted)
	}
	deleted, err = store.Delete(ctx, g.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if deleted != 0 {
		t.Errorf("second delete: got %d, want 0", deleted)
	}
}
