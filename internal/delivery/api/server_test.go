package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"greengrocer/config"
	"greengrocer/internal/delivery/api/router"
	"greengrocer/internal/delivery/api/router/handler"
	"greengrocer/internal/infra/persistence/postgres"
	"greengrocer/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiClient struct {
	t *testing.T
	e *echo.Echo
}

// newAPIClient serves the full router over a fresh SQLite database.
func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "api.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(context.Background(), db))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Pagination = config.PaginationConfig{CustomerDefaultLimit: 10, DefaultLimit: 100, MaxLimit: 1000}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tm := postgres.NewTransactionManager(db)

	e := NewEcho(cfg, log, router.RouterParams{
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{
			CustomerUC: impl.NewCustomerService(tm, log),
			Config:     cfg,
			Logger:     log,
		}),
		VegetableHandler: handler.NewVegetableHandler(handler.VegetableHandlerParams{
			VegetableUC: impl.NewVegetableService(tm, log),
			Config:      cfg,
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: impl.NewOrderService(tm, log),
			Config:  cfg,
		}),
	})

	return &apiClient{t: t, e: e}
}

func (c *apiClient) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}

	return rec.Code, decoded
}

func (c *apiClient) create(path string, body any) string {
	c.t.Helper()

	status, resp := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, status, resp)

	return resp["id"].(string)
}

func itemIDs(resp map[string]any) []string {
	items, _ := resp["items"].([]any)
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.(map[string]any)["id"].(string))
	}

	return ids
}

func errorCode(resp map[string]any) string {
	errObj, _ := resp["error"].(map[string]any)
	code, _ := errObj["code"].(string)

	return code
}

func TestAPI_FilterScenario(t *testing.T) {
	c := newAPIClient(t)

	alice := c.create("/api/v1/customers/", map[string]any{"fullName": "Alice"})
	carrot := c.create("/api/v1/vegetables/", map[string]any{"title": "Carrot", "weight": 10, "price": 5, "length": 3})
	c.create("/api/v1/orders/", map[string]any{"customerId": alice, "vegetableId": carrot, "quantity": 7})

	status, resp := c.do(http.MethodGet, "/api/v1/customers/?minTotalQuantity=5", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{alice}, itemIDs(resp))
	assert.EqualValues(t, 1, resp["total"])
	assert.EqualValues(t, 10, resp["limit"])
	assert.EqualValues(t, 0, resp["offset"])

	status, resp = c.do(http.MethodGet, "/api/v1/customers?minTotalQuantity=8", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, itemIDs(resp))
	assert.EqualValues(t, 0, resp["total"])

	status, resp = c.do(http.MethodGet, "/api/v1/customers/?minTotalQuantity=7&vegetableTypeId="+carrot, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{alice}, itemIDs(resp))
}

func TestAPI_CustomerCRUD(t *testing.T) {
	c := newAPIClient(t)

	status, created := c.do(http.MethodPost, "/api/v1/customers", map[string]any{"fullName": "Alice", "ignored": true})
	require.Equal(t, http.StatusCreated, status)
	id := created["id"].(string)
	assert.Equal(t, "Alice", created["fullName"])
	assert.NotEmpty(t, created["createdAt"])

	status, got := c.do(http.MethodGet, "/api/v1/customers/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created, got)

	status, updated := c.do(http.MethodPut, "/api/v1/customers/"+id, map[string]any{"fullName": "Alicia"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Alicia", updated["fullName"])
	assert.Equal(t, created["createdAt"], updated["createdAt"])

	status, deleted := c.do(http.MethodDelete, "/api/v1/customers/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Customer deleted successfully", deleted["message"])
	assert.Equal(t, id, deleted["deletedCustomer"].(map[string]any)["id"])

	status, resp := c.do(http.MethodGet, "/api/v1/customers/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", errorCode(resp))
}

func TestAPI_CreateOrderWithUnknownCustomer(t *testing.T) {
	c := newAPIClient(t)

	carrot := c.create("/api/v1/vegetables", map[string]any{"title": "Carrot", "weight": 10, "price": 5, "length": 3})
	missing := "0190a5f2-0000-7000-8000-000000000001"

	status, resp := c.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"customerId":  missing,
		"vegetableId": carrot,
		"quantity":    1,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", errorCode(resp))
	assert.Contains(t, resp["error"].(map[string]any)["details"], missing)

	status, resp = c.do(http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, resp["total"])
}

func TestAPI_ZeroLimitReturnsTotal(t *testing.T) {
	c := newAPIClient(t)

	c.create("/api/v1/customers", map[string]any{"fullName": "Alice"})
	c.create("/api/v1/customers", map[string]any{"fullName": "Bob"})
	c.create("/api/v1/vegetables", map[string]any{"title": "Carrot", "weight": 0, "price": 0, "length": 0})

	for _, path := range []string{"/api/v1/customers?limit=0", "/api/v1/vegetables?limit=0"} {
		status, resp := c.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, status, path)

		items, ok := resp["items"].([]any)
		require.True(t, ok, "items must be an array: %v", resp)
		assert.Empty(t, items)
		assert.NotZero(t, resp["total"])
		assert.EqualValues(t, 0, resp["limit"])
	}
}

func TestAPI_SkipIsOffsetAlias(t *testing.T) {
	c := newAPIClient(t)

	first := c.create("/api/v1/vegetables", map[string]any{"title": "Carrot", "weight": 1, "price": 1, "length": 1})
	second := c.create("/api/v1/vegetables", map[string]any{"title": "Beet", "weight": 1, "price": 1, "length": 1})

	status, resp := c.do(http.MethodGet, "/api/v1/vegetables?skip=1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{second}, itemIDs(resp))
	assert.EqualValues(t, 1, resp["offset"])
	assert.NotContains(t, itemIDs(resp), first)
}

func TestAPI_DeleteReferencedCustomerConflicts(t *testing.T) {
	c := newAPIClient(t)

	alice := c.create("/api/v1/customers", map[string]any{"fullName": "Alice"})
	carrot := c.create("/api/v1/vegetables", map[string]any{"title": "Carrot", "weight": 1, "price": 1, "length": 1})
	c.create("/api/v1/orders", map[string]any{"customerId": alice, "vegetableId": carrot, "quantity": 2})

	status, resp := c.do(http.MethodDelete, "/api/v1/customers/"+alice, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "REFERENCE_CONFLICT", errorCode(resp))

	status, _ = c.do(http.MethodGet, "/api/v1/customers/"+alice, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAPI_RejectsInvalidInput(t *testing.T) {
	c := newAPIClient(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "negative limit", method: http.MethodGet, path: "/api/v1/customers?limit=-1"},
		{name: "limit above max", method: http.MethodGet, path: "/api/v1/orders?limit=1001"},
		{name: "non numeric offset", method: http.MethodGet, path: "/api/v1/vegetables?offset=abc"},
		{name: "non numeric minimum", method: http.MethodGet, path: "/api/v1/customers?minTotalQuantity=many"},
		{name: "malformed vegetable filter", method: http.MethodGet, path: "/api/v1/customers?vegetableTypeId=carrot"},
		{name: "malformed path id", method: http.MethodGet, path: "/api/v1/orders/42"},
		{name: "missing name", method: http.MethodPost, path: "/api/v1/customers", body: map[string]any{}},
		{name: "missing weight", method: http.MethodPost, path: "/api/v1/vegetables", body: map[string]any{"title": "Carrot", "price": 1, "length": 1}},
		{name: "wrong quantity type", method: http.MethodPost, path: "/api/v1/orders", body: map[string]any{"customerId": "x", "vegetableId": "y", "quantity": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := c.do(tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
		})
	}
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	c := newAPIClient(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/not-a-uuid", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.True(t, strings.Contains(rec.Body.String(), `"request_id":"req-123"`), rec.Body.String())
}

func TestAPI_Health(t *testing.T) {
	c := newAPIClient(t)

	status, resp := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp["status"])
}
