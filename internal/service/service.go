package service

import (
	"context"

	"expensetrack/internal/models"
	"expensetrack/internal/repository"
)

// Authorization covers registration, login and session verification.
type Authorization interface {
	Register(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	ParseToken(token string) (string, error)
	GetUser(ctx context.Context, id string) (models.User, error)
}

// Expenses exposes owner-scoped CRUD. The user id always comes from the
// authenticated session, never from the request payload.
type Expenses interface {
	Create(ctx context.Context, userID string, in CreateExpenseInput) (models.Expense, error)
	List(ctx context.Context, userID string, f models.ExpenseFilter) ([]models.Expense, error)
	Get(ctx context.Context, userID, id string) (models.Expense, error)
	Update(ctx context.Context, userID, id string, in UpdateExpenseInput) (models.Expense, error)
	Delete(ctx context.Context, userID, id string) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Expenses
}

func NewService(repos *repository.Repository, tokens *TokenManager) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Expenses:      NewExpenseService(repos.Expenses),
	}
}
