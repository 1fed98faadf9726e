package media

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio/folio-api/internal/pkg/storage"
)

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, data := range files {
		part, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	st, err := storage.NewLocalStorage(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return NewHandler(NewService(st, NewOptimizer(), failingExtractor{}), st)
}

func TestUploadHandlerRejectsDisallowedType(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	body, contentType := multipartBody(t, map[string][]byte{
		"malware.exe": []byte("MZ"),
	})

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUploadHandlerReturnsDescriptors(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	body, contentType := multipartBody(t, map[string][]byte{
		"paper.pdf": []byte("%PDF-1.4 fake"),
	})

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool    `json:"success"`
		Data    []*File `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || len(resp.Data) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	f := resp.Data[0]
	if f.OriginalName != "paper.pdf" || f.Kind != KindPDF || f.SizeBytes == 0 || f.URL == "" {
		t.Fatalf("incomplete descriptor: %+v", f)
	}
}

func TestUploadHandlerRejectsEmptyBatch(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	body, contentType := multipartBody(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
