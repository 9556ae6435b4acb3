package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"expensetrack/internal/models"
	"expensetrack/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"

	errTimeFormat = "must be RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'"
)

type createExpenseRequest struct {
	Title    string  `json:"title" binding:"required,min=1"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category"`
	Info     string  `json:"info"`
}

type updateExpenseRequest struct {
	Title    *string  `json:"title" binding:"omitempty,min=1"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category *string  `json:"category"`
	Info     *string  `json:"info"`
}

func (r updateExpenseRequest) empty() bool {
	return r.Title == nil && r.Amount == nil && r.Category == nil && r.Info == nil
}

// @Summary      List expenses
// @Description  Filters: from/to (RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'; date-only 'to' is end-of-day inclusive), min_amount/max_amount, category (exact), q (substring over title or info), limit.
// @Tags         expenses
// @Produce      json
// @Param        from        query  string  false  "Start of creation range"  example(2025-08-01)
// @Param        to          query  string  false  "End of creation range"    example(2025-08-31)
// @Param        min_amount  query  number  false  "Inclusive lower amount bound"
// @Param        max_amount  query  number  false  "Inclusive upper amount bound"
// @Param        category    query  string  false  "Exact category match"
// @Param        q           query  string  false  "Substring search in title or info"
// @Param        limit       query  int     false  "Maximum number of results"
// @Success      200  {object}  map[string]interface{}  "message, expenses"
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /expenses/get [get]
func (h *Handler) listExpenses(c *gin.Context) {
	filter, verr := parseExpenseFilter(c)
	if verr != nil {
		_ = c.Error(verr)
		return
	}

	expenses, err := h.services.List(c.Request.Context(), currentUserID(c), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if len(expenses) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no expenses recorded yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expenses retrieved", "expenses": expenses})
}

// @Summary      Create an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body  createExpenseRequest  true  "Expense payload"
// @Success      201   {object}  map[string]interface{}  "message, expense"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /expenses/create [post]
func (h *Handler) createExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(newValidationError(err))
		return
	}

	expense, err := h.services.Expenses.Create(c.Request.Context(), currentUserID(c), service.CreateExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Info:     req.Info,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "expense created", "expense": expense})
}

// @Summary      Get one expense
// @Tags         expenses
// @Produce      json
// @Param        id  path  string  true  "Expense id"
// @Success      200  {object}  map[string]interface{}  "expense"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id} [get]
func (h *Handler) getExpense(c *gin.Context) {
	expense, err := h.services.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Expense id"
// @Param        body  body  updateExpenseRequest  true  "Any subset of title, amount, category, info"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /expenses/{id} [patch]
func (h *Handler) updateExpense(c *gin.Context) {
	var req updateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(newValidationError(err))
		return
	}
	if req.empty() {
		_ = c.Error(&ValidationError{Fields: []FieldError{
			{Field: "body", Message: "at least one field is required"},
		}})
		return
	}

	expense, err := h.services.Update(c.Request.Context(), currentUserID(c), c.Param("id"), service.UpdateExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Info:     req.Info,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Param        id  path  string  true  "Expense id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /expenses/{id} [delete]
func (h *Handler) deleteExpense(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}

// parseExpenseFilter validates the list query and transforms it into a
// storage predicate. Field failures accumulate so the response reports every
// violated constraint; only the pairwise range checks short-circuit.
func parseExpenseFilter(c *gin.Context) (models.ExpenseFilter, *ValidationError) {
	var (
		f      models.ExpenseFilter
		fields []FieldError
	)

	if qs := c.Query("from"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			fields = append(fields, FieldError{Field: "from", Message: errTimeFormat})
		} else {
			f.From = &t
		}
	}
	if qs := c.Query("to"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			fields = append(fields, FieldError{Field: "to", Message: errTimeFormat})
		} else {
			// A date-only upper bound means the whole of that day.
			if isDateOnly(qs) {
				t = t.Add(24*time.Hour - time.Nanosecond)
			}
			f.To = &t
		}
	}

	if qs := c.Query("min_amount"); qs != "" {
		v, err := strconv.ParseFloat(qs, 64)
		if err != nil || v <= 0 {
			fields = append(fields, FieldError{Field: "min_amount", Message: "must be a positive number"})
		} else {
			f.MinAmount = &v
		}
	}
	if qs := c.Query("max_amount"); qs != "" {
		v, err := strconv.ParseFloat(qs, 64)
		if err != nil || v <= 0 {
			fields = append(fields, FieldError{Field: "max_amount", Message: "must be a positive number"})
		} else {
			f.MaxAmount = &v
		}
	}

	if qs, ok := c.GetQuery("category"); ok {
		if qs == "" {
			fields = append(fields, FieldError{Field: "category", Message: "must not be empty"})
		} else {
			f.Category = qs
		}
	}
	if qs, ok := c.GetQuery("q"); ok {
		if qs == "" {
			fields = append(fields, FieldError{Field: "q", Message: "must not be empty"})
		} else {
			f.Search = qs
		}
	}
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil || n <= 0 {
			fields = append(fields, FieldError{Field: "limit", Message: "must be a positive integer"})
		} else {
			f.Limit = n
		}
	}

	// Order checks run only when both sides parsed.
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		fields = append(fields, FieldError{Field: "from", Message: "must be before or equal to 'to'"})
	}
	if f.MinAmount != nil && f.MaxAmount != nil && *f.MinAmount > *f.MaxAmount {
		fields = append(fields, FieldError{Field: "min_amount", Message: "must be less than or equal to 'max_amount'"})
	}

	if len(fields) > 0 {
		return models.ExpenseFilter{}, &ValidationError{Fields: fields}
	}
	return f, nil
}

// isDateOnly reports whether the query string has no time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}
