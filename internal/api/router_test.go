package api

import (
	"bytes"
	"context"
	mw "customer-dashboard/internal/api/middleware"
	"customer-dashboard/internal/config"
	"customer-dashboard/internal/domain/customer"
	"customer-dashboard/internal/pkg/apperrors"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCustomerService struct {
	mock.Mock
}

func (m *mockCustomerService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *mockCustomerService) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Metrics: config.MetricsConfig{Path: "/metrics"},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestSetupRouter(t *testing.T) {
	created := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("GET /customers returns the table", func(t *testing.T) {
		svc := new(mockCustomerService)
		svc.On("ListCustomers", mock.Anything).Return([]*customer.Customer{
			{Serial: 1, Name: "Alice", Age: 30, Phone: "555-0100", Location: "NYC", CreatedAt: created},
		}, nil).Once()
		router := SetupRouter(svc, nil, testConfig(), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Body.String(), `"customer_name":"Alice"`)
		svc.AssertExpectations(t)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		svc := new(mockCustomerService)
		svc.On("ListCustomers", mock.Anything).
			Return(nil, apperrors.WrapStoreError(errors.New("dial tcp: refused"), "query failed")).Once()
		router := SetupRouter(svc, nil, testConfig(), testLogger())

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/customers", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, `{"error":"Internal Server Error"}`, rr.Body.String())
	})

	t.Run("disallowed origin is refused", func(t *testing.T) {
		svc := new(mockCustomerService)
		router := SetupRouter(svc, nil, testConfig(), testLogger())

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Origin", "http://evil.example")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		svc.AssertNotCalled(t, "ListCustomers", mock.Anything)
	})

	t.Run("health", func(t *testing.T) {
		router := SetupRouter(new(mockCustomerService), nil, testConfig(), testLogger())

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		router := SetupRouter(new(mockCustomerService), nil, testConfig(), testLogger())

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), "go_goroutines"))
	})

	t.Run("swagger redirect", func(t *testing.T) {
		router := SetupRouter(new(mockCustomerService), nil, testConfig(), testLogger())

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger", nil))

		assert.Equal(t, http.StatusMovedPermanently, rr.Code)
		assert.Equal(t, "/swagger/index.html", rr.Header().Get("Location"))
	})

	t.Run("rate limited", func(t *testing.T) {
		svc := new(mockCustomerService)
		svc.On("ListCustomers", mock.Anything).Return([]*customer.Customer{}, nil)
		limiter := mw.NewRateLimiterMiddleware(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}, testLogger())
		defer limiter.Stop()
		router := SetupRouter(svc, limiter, testConfig(), testLogger())

		first := httptest.NewRecorder()
		router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/customers", nil))
		second := httptest.NewRecorder()
		router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/customers", nil))

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})
}
