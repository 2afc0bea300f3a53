package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"xcelliti-backend/internal/auth"
	"xcelliti-backend/internal/config"
	"xcelliti-backend/internal/middleware"
	"xcelliti-backend/internal/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserStore struct {
	users map[string]auth.User
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (auth.User, error) {
	user, ok := f.users[email]
	if !ok {
		return auth.User{}, mongo.ErrNoDocuments
	}
	return user, nil
}

func testServer(t *testing.T) *Server {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	store := &fakeUserStore{users: map[string]auth.User{
		"real@x.com": {ID: "u1", Email: "real@x.com", PasswordHash: hash, Role: auth.RoleAdmin},
	}}
	return &Server{
		Cfg: &config.Config{CookieSecure: false, Timezone: time.UTC},
		Val: validation.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Auth: auth.NewService(store),
		JWT: &auth.Manager{
			Secret:     []byte("test-secret"),
			AccessTTL:  15 * time.Minute,
			RefreshTTL: time.Hour,
			Issuer:     "xcelliti-backend",
		},
	}
}

func doLogin(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Login(rec, req)
	return rec
}

func TestLoginSuccessSetsCookies(t *testing.T) {
	s := testServer(t)
	rec := doLogin(t, s, `{"email":"real@x.com","password":"correct-horse"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "u1" || resp.Email != "real@x.com" {
		t.Fatalf("unexpected session: %+v", resp)
	}

	cookies := rec.Result().Cookies()
	var haveAccess, haveRefresh bool
	for _, c := range cookies {
		if c.Name == middleware.AccessCookieName && c.Value != "" {
			haveAccess = true
			if !c.HttpOnly {
				t.Fatalf("access cookie must be HttpOnly")
			}
		}
		if c.Name == refreshCookieName && c.Value != "" {
			haveRefresh = true
		}
	}
	if !haveAccess || !haveRefresh {
		t.Fatalf("expected access and refresh cookies, got %v", cookies)
	}
}

func TestLoginGenericFailureMessage(t *testing.T) {
	s := testServer(t)

	unknown := doLogin(t, s, `{"email":"nonexistent@x.com","password":"anything"}`)
	wrongPass := doLogin(t, s, `{"email":"real@x.com","password":"wrongpass"}`)

	if unknown.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", unknown.Code, wrongPass.Code)
	}
	// Identical bodies: the response must not reveal whether the account exists.
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Fatalf("failure bodies differ: %q vs %q", unknown.Body.String(), wrongPass.Body.String())
	}
}

func TestLoginRejectsMalformedPayload(t *testing.T) {
	s := testServer(t)

	rec := doLogin(t, s, `{"email":"not-an-email","password":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRefreshIssuesNewSession(t *testing.T) {
	s := testServer(t)

	refresh, err := s.JWT.NewRefreshToken("u1", "real@x.com")
	if err != nil {
		t.Fatalf("NewRefreshToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: refresh})
	rec := httptest.NewRecorder()
	s.Refresh(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRefreshRejectsMissingToken(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	rec := httptest.NewRecorder()
	s.Refresh(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
