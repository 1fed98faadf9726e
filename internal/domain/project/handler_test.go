package project

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/folio/folio-api/internal/pkg/docstore"
)

func passThrough(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	docs, err := docstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewHandler(NewStore(docs)).Routes(passThrough)
}

func TestHandlerUpsertThenGet(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	body := `{"title":"Ceramics","medium":"Stoneware","images":["/media/images/pot.jpg"]}`
	req := httptest.NewRequest(http.MethodPut, "/ceramics-2024", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("upsert status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ceramics-2024", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	var envelope struct {
		Data Project `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Title != "Ceramics" || envelope.Data.Medium != "Stoneware" {
		t.Fatalf("unexpected project: %+v", envelope.Data)
	}
	if len(envelope.Data.Images) != 1 || envelope.Data.Images[0] != "/media/images/pot.jpg" {
		t.Fatalf("unexpected images: %v", envelope.Data.Images)
	}
}

func TestHandlerGetUnknownReturns404(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerUpsertRejectsBadID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/Bad_ID", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerUpsertRejectsMissingTitle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/untitled", strings.NewReader(`{"medium":"Oil"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestHandlerDeleteThenGet(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/sample-project", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sample-project", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestHandlerReorder(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	for _, id := range []string{"aa", "bb"} {
		req := httptest.NewRequest(http.MethodPut, "/"+id, strings.NewReader(`{"title":"`+id+`"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("seed upsert status = %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPatch, "/reorder", strings.NewReader(`{"ids":["bb","aa"]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("reorder status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bb", nil))
	var envelope struct {
		Data Project `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Order != 1 {
		t.Fatalf("bb order = %d, want 1", envelope.Data.Order)
	}
}
