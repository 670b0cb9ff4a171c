package tutorials_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bookwormhq/bookworm-server/internal/app/features/tutorials"
	"github.com/bookwormhq/bookworm-server/internal/domain/models"
	"github.com/bookwormhq/bookworm-server/internal/testutil"
)

func TestTutorialCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := tutorials.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/tutorials", map[string]string{
		"title":   "How to track your reading",
		"content": `<p>Step one</p><script>alert(1)</script>`,
	})
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d (%s)", rec.Code, rec.Body.String())
	}
	var created models.Tutorial
	testutil.DecodeJSON(t, rec, &created)
	if strings.Contains(created.Content, "<script>") {
		t.Errorf("script tag survived: %q", created.Content)
	}

	req = testutil.NewRequest("GET", "/tutorials/"+created.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec = httptest.NewRecorder()
	handler.ServeGet(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: got %d", rec.Code)
	}

	req = testutil.NewJSONRequest(t, "PUT", "/tutorials/"+created.ID.Hex(), map[string]string{
		"title": "How to track your reading", "video_url": "https://videos.example.com/1",
	})
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec = httptest.NewRecorder()
	handler.HandleUpdate(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("update: got %d (%s)", rec.Code, rec.Body.String())
	}

	req = testutil.NewRequest("DELETE", "/tutorials/"+created.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec = httptest.NewRecorder()
	handler.HandleDelete(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("delete: got %d", rec.Code)
	}

	req = testutil.NewRequest("GET", "/tutorials/"+created.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec = httptest.NewRecorder()
	handler.ServeGet(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: got %d, want 404", rec.Code)
	}
}
