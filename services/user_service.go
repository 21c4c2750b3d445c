package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dhruvmish/Airline-Assistant/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages accounts in the users collection.
type UserService struct {
	collection *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	if db == nil {
		return &UserService{}
	}
	return &UserService{collection: db.Collection("users")}
}

// CreateUser registers a new account with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, username, password string) error {
	if len(username) < 3 || len(password) < 4 {
		return fmt.Errorf("username or password too short")
	}

	count, err := s.collection.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:       username,
		HashedPassword: string(hash),
		CreatedAt:      time.Now(),
	}
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Authenticate verifies a username/password pair.
func (s *UserService) Authenticate(ctx context.Context, username, password string) error {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return fmt.Errorf("invalid username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return fmt.Errorf("invalid username or password")
	}
	return nil
}
