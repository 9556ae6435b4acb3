package service

import (
	"context"
	"errors"
	"fmt"

	"expensetrack/internal/models"
	"expensetrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService handles registration, login and session verification.
type AuthService struct {
	users  repository.Users
	tokens *TokenManager
}

func NewAuthService(users repository.Users, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register hashes the password and creates the account. The existence
// pre-check turns the common duplicate case into a friendly conflict instead
// of surfacing a raw unique-constraint violation.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := models.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	if u == nil {
		return models.User{}, "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.User{}, "", ErrInvalidPassword
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue session token: %w", err)
	}
	return *u, token, nil
}

// ParseToken verifies a presented session token and returns the user id.
func (s *AuthService) ParseToken(token string) (string, error) {
	return s.tokens.Parse(token)
}

// GetUser loads the authenticated user's account.
func (s *AuthService) GetUser(ctx context.Context, id string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

// helper: hash password with a per-call random salt.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash; returns an error on mismatch, never
// panics.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
