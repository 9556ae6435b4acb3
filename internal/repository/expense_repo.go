package repository

import (
	"context"
	"errors"
	"fmt"

	"expensetrack/internal/models"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Ensure implementation of the Expenses interface at compile time.
var _ Expenses = (*ExpenseRepository)(nil)

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("insert expense %q: %w", e.Title, err)
	}
	return nil
}

// List returns the user's expenses matching the filter, newest first.
// The user_id predicate is always present, before any filter condition.
func (r *ExpenseRepository) List(ctx context.Context, userID string, f models.ExpenseFilter) ([]models.Expense, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(r.db.Where("title ILIKE ?", pattern).Or("info ILIKE ?", pattern))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	out := make([]models.Expense, 0, 16)
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return out, nil
}

// GetOwned fetches one expense scoped to its owner.
// Returns (nil, nil) when the row is absent or owned by someone else.
func (r *ExpenseRepository) GetOwned(ctx context.Context, id, userID string) (*models.Expense, error) {
	var e models.Expense
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("select expense %q: %w", id, err)
	}
	return &e, nil
}

// UpdateOwned applies the given columns to the owner's expense and reports
// the number of matched rows.
func (r *ExpenseRepository) UpdateOwned(ctx context.Context, id, userID string, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("update expense %q: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteOwned removes the owner's expense and reports the number of matched
// rows.
func (r *ExpenseRepository) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete expense %q: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
