package server

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"max.ks1230/finance-tracker/internal/clients/cache"
	"max.ks1230/finance-tracker/internal/clients/kafka"
	"max.ks1230/finance-tracker/internal/model/auth"
	"max.ks1230/finance-tracker/internal/model/bootstrap"
	"max.ks1230/finance-tracker/internal/model/calendar"
	"max.ks1230/finance-tracker/internal/model/categories"
	"max.ks1230/finance-tracker/internal/model/reports"
	"max.ks1230/finance-tracker/internal/model/storage"
	"max.ks1230/finance-tracker/internal/model/transactions"
)

type testConfig struct{}

func (testConfig) CookieName() string        { return "session" }
func (testConfig) SecureCookie() bool        { return false }
func (testConfig) SessionTTL() time.Duration { return 0 }
func (testConfig) SessionSecret() string     { return "test-secret" }
func (testConfig) DefaultPin() string        { return "1234" }

var today = time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC)

type testClient struct {
	t       *testing.T
	handler http.Handler
	cookie  *http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	store := storage.NewInMemStorage()
	require.NoError(t, bootstrap.Run(ctx, testConfig{}, store))

	gate, err := auth.New(testConfig{}, store)
	require.NoError(t, err)

	clock := calendar.Fixed(today)
	srv := New(testConfig{}, Services{
		Auth:         gate,
		Categories:   categories.NewService(store, kafka.NoopPublisher{}, clock),
		Transactions: transactions.NewService(store, kafka.NoopPublisher{}, cache.Noop{}, clock),
		Dashboard:    reports.NewGenerator(store, cache.Noop{}),
		Clock:        clock,
	})
	return &testClient{t: t, handler: srv.Handler()}
}

func (tc *testClient) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(tc.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if tc.cookie != nil {
		req.AddCookie(tc.cookie)
	}
	w := httptest.NewRecorder()
	tc.handler.ServeHTTP(w, req)
	return w
}

func (tc *testClient) login() {
	w := tc.do(http.MethodPost, "/api/login", map[string]string{"pin": "1234"})
	require.Equal(tc.t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" {
			tc.cookie = c
		}
	}
	require.NotNil(tc.t, tc.cookie)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	decode(t, w, &body)
	return body["error"]
}

func (tc *testClient) categoryID(name string) int64 {
	w := tc.do(http.MethodGet, "/api/categories", nil)
	require.Equal(tc.t, http.StatusOK, w.Code)
	var cats []categoryJSON
	decode(tc.t, w, &cats)
	for _, c := range cats {
		if c.Name == name {
			return c.ID
		}
	}
	tc.t.Fatalf("category %s not found", name)
	return 0
}

func Test_OnProtectedRoutes_ShouldRequireSession(t *testing.T) {
	tc := newTestClient(t)

	for _, r := range []struct{ method, target string }{
		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/categories"},
		{http.MethodDelete, "/api/categories?id=1"},
		{http.MethodGet, "/api/transactions"},
		{http.MethodPost, "/api/transactions"},
		{http.MethodDelete, "/api/transactions?id=1"},
		{http.MethodGet, "/api/transactions/export"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodPost, "/api/change-pin"},
	} {
		w := tc.do(r.method, r.target, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", r.method, r.target)
		assert.Equal(t, "Unauthorized", errorOf(t, w))
	}

	tc.cookie = &http.Cookie{Name: "session", Value: "forged"}
	w := tc.do(http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_OnLogin_ShouldManageSession(t *testing.T) {
	tc := newTestClient(t)

	w := tc.do(http.MethodGet, "/api/me", nil)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

	w = tc.do(http.MethodPost, "/api/login", map[string]string{"pin": "0000"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid PIN", errorOf(t, w))

	w = tc.do(http.MethodPost, "/api/login", "{broken")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	tc.login()
	w = tc.do(http.MethodGet, "/api/me", nil)
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())

	w = tc.do(http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func Test_OnChangePin_ShouldMapErrors(t *testing.T) {
	tc := newTestClient(t)
	tc.login()

	w := tc.do(http.MethodPost, "/api/change-pin", map[string]string{"current_pin": "9999", "new_pin": "5678"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = tc.do(http.MethodPost, "/api/change-pin", map[string]string{"current_pin": "1234", "new_pin": "56789"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "New PIN must be 4 digits", errorOf(t, w))

	w = tc.do(http.MethodPost, "/api/change-pin", map[string]interface{}{"current_pin": 1234, "new_pin": "5678"})
	assert.Equal(t, http.StatusOK, w.Code)

	tc.cookie = nil
	w = tc.do(http.MethodPost, "/api/login", map[string]string{"pin": "1234"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = tc.do(http.MethodPost, "/api/login", map[string]string{"pin": "5678"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_OnCategories_ShouldCreateListAndDelete(t *testing.T) {
	tc := newTestClient(t)
	tc.login()

	w := tc.do(http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats []categoryJSON
	decode(t, w, &cats)
	assert.Len(t, cats, 6)

	w = tc.do(http.MethodPost, "/api/categories", map[string]string{"name": "Books", "type": "expense"})
	require.Equal(t, http.StatusCreated, w.Code)
	var books categoryJSON
	decode(t, w, &books)
	assert.Equal(t, "Books", books.Name)
	assert.Equal(t, "expense", books.Type)

	w = tc.do(http.MethodPost, "/api/categories", map[string]string{"name": "", "type": "expense"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tc.do(http.MethodDelete, "/api/categories?id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tc.do(http.MethodDelete, fmt.Sprintf("/api/categories?id=%d", books.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Deleted"}`, w.Body.String())

	w = tc.do(http.MethodDelete, fmt.Sprintf("/api/categories?id=%d", books.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_OnTransactions_ShouldCreateListAndDelete(t *testing.T) {
	tc := newTestClient(t)
	tc.login()
	food := tc.categoryID("Food")

	w := tc.do(http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount": "12.5", "date": "2025-01-20", "description": "lunch", "type": "expense", "category_id": fmt.Sprint(food),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created transactionJSON
	decode(t, w, &created)
	assert.Equal(t, transactionJSON{
		ID: created.ID, Amount: 12.5, Date: "2025-01-20", Description: "lunch",
		Type: "expense", CategoryName: "Food", CategoryID: food,
	}, created)

	w = tc.do(http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount": 7, "date": "2025-01-21", "type": "expense", "category_id": food,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = tc.do(http.MethodGet, "/api/transactions?start_date=2025-01-21", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []transactionJSON
	decode(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, 7.0, listed[0].Amount)

	w = tc.do(http.MethodGet, "/api/transactions?start_date=bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tc.do(http.MethodDelete, fmt.Sprintf("/api/transactions?id=%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = tc.do(http.MethodDelete, fmt.Sprintf("/api/transactions?id=%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Transaction not found", errorOf(t, w))
}

func Test_OnCreateTransaction_ShouldRejectBadPayloads(t *testing.T) {
	tc := newTestClient(t)
	tc.login()
	food := tc.categoryID("Food")

	for _, body := range []interface{}{
		map[string]interface{}{"amount": "abc", "date": "2025-01-20", "type": "expense", "category_id": food},
		map[string]interface{}{"amount": 5, "date": "2025/01/20", "type": "expense", "category_id": food},
		map[string]interface{}{"amount": 5, "date": "2025-01-20", "type": "expense"},
		map[string]interface{}{"amount": 5, "date": "2025-01-20", "type": "expense", "category_id": 999},
		map[string]interface{}{"amount": true, "date": "2025-01-20", "type": "expense", "category_id": food},
		"not json",
	} {
		w := tc.do(http.MethodPost, "/api/transactions", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v", body)
	}
}

func Test_OnDeleteCategory_ShouldConflictWhenInUse(t *testing.T) {
	tc := newTestClient(t)
	tc.login()
	rent := tc.categoryID("Rent")

	w := tc.do(http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount": 900, "date": "2025-01-01", "type": "expense", "category_id": rent,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = tc.do(http.MethodDelete, fmt.Sprintf("/api/categories?id=%d", rent), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func Test_OnDashboard_ShouldAggregateMonthlyByDefault(t *testing.T) {
	tc := newTestClient(t)
	tc.login()

	for _, body := range []map[string]interface{}{
		{"amount": 100, "date": "2025-01-15", "type": "income", "category_id": tc.categoryID("Salary")},
		{"amount": 40, "date": "2025-01-20", "type": "expense", "category_id": tc.categoryID("Food")},
	} {
		w := tc.do(http.MethodPost, "/api/transactions", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := tc.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var d reports.Dashboard
	decode(t, w, &d)
	assert.Equal(t, reports.Summary{Income: 100, Expenses: 40, Balance: 60}, d.Summary)
	assert.Equal(t, []string{"Food"}, d.BarChart.Labels)
	require.Len(t, d.LineChart.Labels, 13)
	assert.Equal(t, "Jan 25", d.LineChart.Labels[12])
	assert.Equal(t, 100.0, d.LineChart.Income[12])
	assert.Equal(t, 40.0, d.LineChart.Expense[12])

	for period, count := range map[string]int{"daily": 31, "weekly": 13, "monthly": 13, "yearly": 0} {
		w = tc.do(http.MethodGet, "/api/dashboard?period="+period, nil)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &d)
		assert.Len(t, d.LineChart.Labels, count, period)
		assert.Equal(t, 60.0, d.Summary.Balance, period)
	}
}

func Test_OnExport_ShouldWriteCSVAndXLSX(t *testing.T) {
	tc := newTestClient(t)
	tc.login()

	w := tc.do(http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount": 12.5, "date": "2025-01-20", "description": "lunch", "type": "expense", "category_id": tc.categoryID("Food"),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = tc.do(http.MethodGet, "/api/transactions/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions_20250125.csv")
	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Date", "Type", "Category", "Amount", "Description"},
		{"2025-01-20", "expense", "Food", "12.50", "lunch"},
	}, records)

	w = tc.do(http.MethodGet, "/api/transactions/export?format=xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Food", rows[1][2])
	assert.Equal(t, "12.5", rows[1][3])

	w = tc.do(http.MethodGet, "/api/transactions/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_OnHealth_ShouldAnswerWithoutSession(t *testing.T) {
	tc := newTestClient(t)

	w := tc.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func Test_OnFlexString_ShouldAcceptNumbersAndStrings(t *testing.T) {
	var req createTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 12.50, "category_id": "3"}`), &req))
	assert.Equal(t, "12.50", req.Amount.String())
	assert.Equal(t, "3", req.CategoryID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "7", "category_id": 4}`), &req))
	assert.Equal(t, "7", req.Amount.String())
	assert.Equal(t, "4", req.CategoryID.String())

	assert.Error(t, json.Unmarshal([]byte(`{"amount": [1]}`), &req))
}
