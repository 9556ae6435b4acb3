package service

import (
	"context"
	"errors"

	"expensetrack/internal/models"
	"expensetrack/internal/repository"
)

// ErrExpenseNotFound is returned for absent and not-owned records alike.
var ErrExpenseNotFound = errors.New("expense not found")

// CreateExpenseInput carries validated fields for a new expense.
type CreateExpenseInput struct {
	Title    string
	Amount   float64
	Category string
	Info     string
}

// UpdateExpenseInput is a patch; nil fields are left untouched.
type UpdateExpenseInput struct {
	Title    *string
	Amount   *float64
	Category *string
	Info     *string
}

// ExpenseService performs owner-scoped CRUD over the expense store.
type ExpenseService struct {
	expenses repository.Expenses
}

func NewExpenseService(expenses repository.Expenses) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// Create stores a new expense owned by userID.
func (s *ExpenseService) Create(ctx context.Context, userID string, in CreateExpenseInput) (models.Expense, error) {
	e := models.Expense{
		UserID:   userID,
		Title:    in.Title,
		Amount:   in.Amount,
		Category: in.Category,
		Info:     in.Info,
	}
	if err := s.expenses.Create(ctx, &e); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// List returns the user's expenses matching the filter.
func (s *ExpenseService) List(ctx context.Context, userID string, f models.ExpenseFilter) ([]models.Expense, error) {
	return s.expenses.List(ctx, userID, f)
}

// Get loads a single expense scoped to its owner.
func (s *ExpenseService) Get(ctx context.Context, userID, id string) (models.Expense, error) {
	e, err := s.expenses.GetOwned(ctx, id, userID)
	if err != nil {
		return models.Expense{}, err
	}
	if e == nil {
		return models.Expense{}, ErrExpenseNotFound
	}
	return *e, nil
}

// Update applies the patch to the user's expense and returns the fresh
// record. A zero match count means absent or not owned.
func (s *ExpenseService) Update(ctx context.Context, userID, id string, in UpdateExpenseInput) (models.Expense, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Info != nil {
		fields["info"] = *in.Info
	}

	rows, err := s.expenses.UpdateOwned(ctx, id, userID, fields)
	if err != nil {
		return models.Expense{}, err
	}
	if rows == 0 {
		return models.Expense{}, ErrExpenseNotFound
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the user's expense; an absent or already-deleted id is a
// not-found, never a silent success.
func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	rows, err := s.expenses.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
