package genres_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/features/genres"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestGenreCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := genres.NewHandler(db, zap.NewNop())

	// Create
	req := testutil.NewJSONRequest(t, "POST", "/genres", map[string]string{
		"name": "Science Fiction", "description": "Speculative futures",
	})
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d (%s)", rec.Code, rec.Body.String())
	}
	var created models.Genre
	testutil.DecodeJSON(t, rec, &created)

	// Duplicate name conflicts.
	req = testutil.NewJSONRequest(t, "POST", "/genres", map[string]string{"name": "science fiction"})
	rec = httptest.NewRecorder()
	handler.HandleCreate(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate: got %d, want 409", rec.Code)
	}

	// List
	req = testutil.NewRequest("GET", "/genres", nil)
	rec = httptest.NewRecorder()
	handler.ServeList(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got %d", rec.Code)
	}
	var list []models.Genre
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 1 {
		t.Errorf("list length: got %d, want 1", len(list))
	}

	// Update
	req = testutil.NewJSONRequest(t, "PUT", "/genres/"+created.ID.Hex(), map[string]string{"name": "Sci-Fi"})
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec = httptest.NewRecorder()
	handler.HandleUpdate(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("update: got %d (%s)", rec.Code, rec.Body.String())
	}

	// Delete, then delete again.
	req = testutil.NewRequest("DELETE", "/genres/"+created.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec = httptest.NewRecorder()
	handler.HandleDelete(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("delete: got %d", rec.Code)
	}

	req = testutil.NewRequest("DELETE", "/genres/"+created.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec = httptest.NewRecorder()
	handler.HandleDelete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", rec.Code)
	}
}
