package repository

import (
	"context"

	"expensetrack/internal/models"

	"gorm.io/gorm"
)

type Users interface {
	Create(ctx context.Context, u *models.User) error
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns (nil, nil) when the user does not exist.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Expenses is the owner-scoped store contract: the id alone is never enough
// to touch a record, the owning user id is part of every predicate.
type Expenses interface {
	Create(ctx context.Context, e *models.Expense) error
	List(ctx context.Context, userID string, f models.ExpenseFilter) ([]models.Expense, error)
	// GetOwned returns (nil, nil) when the expense is absent or owned by
	// another user; callers cannot tell the two apart.
	GetOwned(ctx context.Context, id, userID string) (*models.Expense, error)
	// UpdateOwned applies fields and reports how many rows matched (0 or 1).
	UpdateOwned(ctx context.Context, id, userID string, fields map[string]any) (int64, error)
	// DeleteOwned removes the row and reports how many rows matched (0 or 1).
	DeleteOwned(ctx context.Context, id, userID string) (int64, error)
}

type Repository struct {
	Users    Users
	Expenses Expenses
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Expenses: NewExpenseRepository(db),
	}
}
