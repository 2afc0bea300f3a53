package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const RoleAdmin = "admin"

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (User, error)
}

type MongoUserStore struct {
	col *mongo.Collection
}

func NewUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{col: col}
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return User{}, err
	}
	return user, nil
}
