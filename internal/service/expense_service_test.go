package service

import (
	"context"
	"testing"
	"time"

	"expensetrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExpensesRepo is an in-test mock for repository.Expenses that records
// the scoping arguments of every call.
type mockExpensesRepo struct {
	listResp   []models.Expense
	listErr    error
	getResp    *models.Expense
	getErr     error
	createErr  error
	updateRows int64
	updateErr  error
	deleteRows int64
	deleteErr  error

	lastUserID string
	lastID     string
	lastFilter models.ExpenseFilter
	lastFields map[string]any
}

func (m *mockExpensesRepo) Create(_ context.Context, e *models.Expense) error {
	m.lastUserID = e.UserID
	if m.createErr == nil {
		e.ID = uuid.NewString()
		e.CreatedAt = time.Now().UTC()
	}
	return m.createErr
}

func (m *mockExpensesRepo) List(_ context.Context, userID string, f models.ExpenseFilter) ([]models.Expense, error) {
	m.lastUserID = userID
	m.lastFilter = f
	return m.listResp, m.listErr
}

func (m *mockExpensesRepo) GetOwned(_ context.Context, id, userID string) (*models.Expense, error) {
	m.lastID, m.lastUserID = id, userID
	return m.getResp, m.getErr
}

func (m *mockExpensesRepo) UpdateOwned(_ context.Context, id, userID string, fields map[string]any) (int64, error) {
	m.lastID, m.lastUserID, m.lastFields = id, userID, fields
	return m.updateRows, m.updateErr
}

func (m *mockExpensesRepo) DeleteOwned(_ context.Context, id, userID string) (int64, error) {
	m.lastID, m.lastUserID = id, userID
	return m.deleteRows, m.deleteErr
}

func TestExpenseService_Create_RoundTrip(t *testing.T) {
	repo := &mockExpensesRepo{}
	svc := NewExpenseService(repo)

	e, err := svc.Create(context.Background(), "user-a", CreateExpenseInput{
		Title: "Coffee", Amount: 4.5, Category: "Food",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
	assert.Equal(t, "user-a", e.UserID)
	assert.Equal(t, "Coffee", e.Title)
	assert.Equal(t, 4.5, e.Amount)
	assert.Equal(t, "Food", e.Category)
}

func TestExpenseService_Get_NotOwnedIsNotFound(t *testing.T) {
	repo := &mockExpensesRepo{getResp: nil}
	svc := NewExpenseService(repo)

	_, err := svc.Get(context.Background(), "user-b", "e-1")
	assert.ErrorIs(t, err, ErrExpenseNotFound)
	assert.Equal(t, "user-b", repo.lastUserID, "store call must carry the requesting user id")
	assert.Equal(t, "e-1", repo.lastID)
}

func TestExpenseService_List_PassesFilterThrough(t *testing.T) {
	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockExpensesRepo{listResp: []models.Expense{{ID: "e-1"}}}
	svc := NewExpenseService(repo)

	out, err := svc.List(context.Background(), "user-a", models.ExpenseFilter{From: &from, Limit: 5})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Equal(t, "user-a", repo.lastUserID)
	require.NotNil(t, repo.lastFilter.From)
	assert.Equal(t, from, *repo.lastFilter.From)
	assert.Equal(t, 5, repo.lastFilter.Limit)
}

func TestExpenseService_Update_OmittedFieldsAreNoOps(t *testing.T) {
	title := "Tea"
	repo := &mockExpensesRepo{
		updateRows: 1,
		getResp:    &models.Expense{ID: "e-1", UserID: "user-a", Title: "Tea", Amount: 4.5},
	}
	svc := NewExpenseService(repo)

	e, err := svc.Update(context.Background(), "user-a", "e-1", UpdateExpenseInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Tea", e.Title)
	assert.Equal(t, map[string]any{"title": "Tea"}, repo.lastFields,
		"omitted fields must not appear in the column map")
	assert.Equal(t, "user-a", repo.lastUserID)
}

func TestExpenseService_Update_ZeroRowsIsNotFound(t *testing.T) {
	title := "Tea"
	repo := &mockExpensesRepo{updateRows: 0}
	svc := NewExpenseService(repo)

	_, err := svc.Update(context.Background(), "user-b", "e-1", UpdateExpenseInput{Title: &title})
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestExpenseService_Delete(t *testing.T) {
	t.Run("owner deletes once", func(t *testing.T) {
		repo := &mockExpensesRepo{deleteRows: 1}
		svc := NewExpenseService(repo)

		require.NoError(t, svc.Delete(context.Background(), "user-a", "e-1"))
		assert.Equal(t, "user-a", repo.lastUserID)
	})

	t.Run("absent or already deleted id is not found", func(t *testing.T) {
		repo := &mockExpensesRepo{deleteRows: 0}
		svc := NewExpenseService(repo)

		err := svc.Delete(context.Background(), "user-a", "e-gone")
		assert.ErrorIs(t, err, ErrExpenseNotFound)

		// Repeating the call never turns into a success.
		err = svc.Delete(context.Background(), "user-a", "e-gone")
		assert.ErrorIs(t, err, ErrExpenseNotFound)
	})
}
