package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIdempotencyStore struct {
	mock.Mock
}

func (m *mockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyStore) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockIdempotencyStore) Close() error { return nil }

func idempotentRouter(t *testing.T, store shared.IdempotencyStore, status *int) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(JWTTenantIDKey, "tenant-1")
		c.Next()
	})
	router.POST("/order", Idempotency(store, time.Hour), func(c *gin.Context) {
		c.Status(*status)
	})
	return router
}

func postOrder(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader("{}"))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_DuplicateRejected(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = store.Close() })
	status := http.StatusOK
	router := idempotentRouter(t, store, &status)

	assert.Equal(t, http.StatusOK, postOrder(router, "k1").Code)

	rec := postOrder(router, "k1")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_REQUEST", decodeError(t, rec).Error.Code)

	assert.Equal(t, http.StatusOK, postOrder(router, "k2").Code)
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = store.Close() })
	status := http.StatusOK
	router := idempotentRouter(t, store, &status)

	assert.Equal(t, http.StatusOK, postOrder(router, "").Code)
	assert.Equal(t, http.StatusOK, postOrder(router, "").Code)
	assert.Equal(t, 0, store.Len())
}

func TestIdempotency_FailedRequestReleasesKey(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = store.Close() })
	status := http.StatusBadRequest
	router := idempotentRouter(t, store, &status)

	assert.Equal(t, http.StatusBadRequest, postOrder(router, "k1").Code)
	assert.Equal(t, 0, store.Len())

	status = http.StatusOK
	assert.Equal(t, http.StatusOK, postOrder(router, "k1").Code)
	assert.Equal(t, 1, store.Len())
}

func TestIdempotency_KeyIsScopedToTenantAndRoute(t *testing.T) {
	store := new(mockIdempotencyStore)
	store.On("MarkProcessed", mock.Anything, "tenant-1:POST:/order:abc", time.Hour).Return(true, nil).Once()
	status := http.StatusOK
	router := idempotentRouter(t, store, &status)

	assert.Equal(t, http.StatusOK, postOrder(router, "abc").Code)
	store.AssertExpectations(t)
}

func TestIdempotency_StoreErrorFailsOpen(t *testing.T) {
	store := new(mockIdempotencyStore)
	store.On("MarkProcessed", mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
	status := http.StatusOK
	router := idempotentRouter(t, store, &status)

	assert.Equal(t, http.StatusOK, postOrder(router, "abc").Code)
	store.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestIdempotency_OversizedKey(t *testing.T) {
	store := new(mockIdempotencyStore)
	status := http.StatusOK
	router := idempotentRouter(t, store, &status)

	rec := postOrder(router, strings.Repeat("k", 256))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
	store.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
}
