package auth

import (
	"testing"
	"time"
)

func testManager() *Manager {
	return &Manager{
		Secret:     []byte("test-secret"),
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
		Issuer:     "xcelliti-backend",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.NewAccessToken("u1", "admin@x.com")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "admin@x.com" || claims.Role != RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := testManager()
	token, err := m.NewAccessToken("u1", "admin@x.com")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	other := testManager()
	other.Secret = []byte("different-secret")
	if _, err := other.Parse(token); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := testManager()
	m.AccessTTL = -time.Minute

	token, err := m.NewAccessToken("u1", "admin@x.com")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatalf("expected parse failure for expired token")
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if err := ComparePassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}
