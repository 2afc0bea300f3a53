package auth

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash keeps the bcrypt cost paid even when the email does not match a user,
// so the response time does not reveal account existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

func (s *Service) Authorize(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			_ = ComparePassword(dummyHash, password)
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}
