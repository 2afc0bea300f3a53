package content

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"xcelliti-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) (*chi.Mux, *fakeRepo[ContactSubmission]) {
	t.Helper()
	repo := newFakeRepo[ContactSubmission]()
	res := NewResource("contact-submissions", "contact submission", Repository[ContactSubmission](repo), time.UTC, buildContactSubmission, contactSubmissionSet)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(res, validation.New(), logger, nil, time.Minute)

	r := chi.NewRouter()
	r.Post("/api/contact-submissions", h.PublicCreate)
	r.Get("/api/admin/contact-submissions", h.AdminList)
	r.Delete("/api/admin/contact-submissions/{id}", h.AdminDelete)
	return r, repo
}

func TestContactCreateRejectsShortMessage(t *testing.T) {
	router, repo := newTestRouter(t)

	body := `{"name":"Al","email":"a@b.com","message":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact-submissions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if count, _ := repo.Count(req.Context()); count != 0 {
		t.Fatalf("expected no persistence on validation failure")
	}
}

func TestContactCreatePersistsWithTimestamp(t *testing.T) {
	router, repo := newTestRouter(t)

	body := `{"name":"Al","email":"a@b.com","message":"a message that is long enough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact-submissions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Item ContactSubmission `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Item.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if resp.Item.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned createdAt")
	}
	if count, _ := repo.Count(req.Context()); count != 1 {
		t.Fatalf("expected 1 stored submission")
	}
}

func TestContactCreateRejectsInvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact-submissions", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminListResponseShape(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < 3; i++ {
		body := `{"name":"Al","email":"a@b.com","message":"a message that is long enough"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact-submissions", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("setup create failed: %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contact-submissions?page=1&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Items []ContactSubmission `json:"items"`
		Total int64               `json:"total"`
		Page  int64               `json:"page"`
		Limit int64               `json:"limit"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 2 || resp.Total != 3 || resp.Page != 1 || resp.Limit != 2 {
		t.Fatalf("unexpected list shape: %+v", resp)
	}
}

func TestAdminDeleteUnknownID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/contact-submissions/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAdminDeleteRemovesSubmission(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"name":"Al","email":"a@b.com","message":"a message that is long enough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact-submissions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rec.Code)
	}
	var created struct {
		Item ContactSubmission `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/contact-submissions/"+created.Item.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/contact-submissions", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var resp struct {
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 0 {
		t.Fatalf("expected total 0 after delete, got %d", resp.Total)
	}
}
