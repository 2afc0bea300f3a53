package auth

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserStore struct {
	users map[string]User
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (User, error) {
	user, ok := f.users[email]
	if !ok {
		return User{}, mongo.ErrNoDocuments
	}
	return user, nil
}

func newFakeStore(t *testing.T) *fakeUserStore {
	t.Helper()
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &fakeUserStore{users: map[string]User{
		"real@x.com": {ID: "u1", Email: "real@x.com", PasswordHash: hash, Role: RoleAdmin},
	}}
}

func TestAuthorizeSuccess(t *testing.T) {
	svc := NewService(newFakeStore(t))

	user, err := svc.Authorize(context.Background(), "real@x.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authorize error: %v", err)
	}
	if user.ID != "u1" || user.Email != "real@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthorizeNormalizesEmail(t *testing.T) {
	svc := NewService(newFakeStore(t))

	if _, err := svc.Authorize(context.Background(), "  Real@X.com ", "correct-horse"); err != nil {
		t.Fatalf("Authorize error: %v", err)
	}
}

func TestAuthorizeGenericFailure(t *testing.T) {
	svc := NewService(newFakeStore(t))

	_, errUnknown := svc.Authorize(context.Background(), "nonexistent@x.com", "anything")
	_, errWrongPass := svc.Authorize(context.Background(), "real@x.com", "wrongpass")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	// The two failures must be indistinguishable to the caller.
	if errUnknown.Error() != errWrongPass.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errUnknown.Error(), errWrongPass.Error())
	}
}
