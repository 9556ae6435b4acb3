package handlers

import (
	"context"
	"net/http"

	"expensetrack/internal/models"
	"expensetrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser models.User
	registerErr  error
	loginUser    models.User
	loginToken   string
	loginErr     error
	parseID      string
	parseErr     error
	getUserResp  models.User
	getUserErr   error

	registerCalls     int
	lastRegisterEmail string
	lastLoginEmail    string
	lastParseToken    string
	lastGetUserID     string
}

func (m *mockAuth) Register(_ context.Context, name, email, password string) (models.User, error) {
	m.registerCalls++
	m.lastRegisterEmail = email
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (models.User, string, error) {
	m.lastLoginEmail = email
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) GetUser(_ context.Context, id string) (models.User, error) {
	m.lastGetUserID = id
	return m.getUserResp, m.getUserErr
}

type mockExpenses struct {
	createResp models.Expense
	createErr  error
	listResp   []models.Expense
	listErr    error
	getResp    models.Expense
	getErr     error
	updateResp models.Expense
	updateErr  error
	deleteErr  error

	listCalls   int
	deleteCalls int
	lastUserID  string
	lastID      string
	lastFilter  models.ExpenseFilter
	lastCreate  service.CreateExpenseInput
	lastUpdate  service.UpdateExpenseInput
}

func (m *mockExpenses) Create(_ context.Context, userID string, in service.CreateExpenseInput) (models.Expense, error) {
	m.lastUserID = userID
	m.lastCreate = in
	return m.createResp, m.createErr
}

func (m *mockExpenses) List(_ context.Context, userID string, f models.ExpenseFilter) ([]models.Expense, error) {
	m.listCalls++
	m.lastUserID = userID
	m.lastFilter = f
	return m.listResp, m.listErr
}

func (m *mockExpenses) Get(_ context.Context, userID, id string) (models.Expense, error) {
	m.lastUserID, m.lastID = userID, id
	return m.getResp, m.getErr
}

func (m *mockExpenses) Update(_ context.Context, userID, id string, in service.UpdateExpenseInput) (models.Expense, error) {
	m.lastUserID, m.lastID = userID, id
	m.lastUpdate = in
	return m.updateResp, m.updateErr
}

func (m *mockExpenses) Delete(_ context.Context, userID, id string) error {
	m.deleteCalls++
	m.lastUserID, m.lastID = userID, id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func sessionCookieHeader(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookie, Value: token}
}
