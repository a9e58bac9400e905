package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader lets clients retry a create safely
	IdempotencyKeyHeader = "Idempotency-Key"
	maxIdempotencyKeyLen = 255
)

// Idempotency rejects a repeated request carrying an Idempotency-Key that
// was already accepted for the same tenant and route. Requests without the
// header pass through. A key is released again when the guarded request
// fails, so the client can retry it. Store errors never block a request.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(shared.ErrInvalidInput.Code, "Idempotency-Key is too long"))
			return
		}

		ctx := c.Request.Context()
		scoped := c.GetString(JWTTenantIDKey) + ":" + c.Request.Method + ":" + c.FullPath() + ":" + key
		fresh, err := store.MarkProcessed(ctx, scoped, ttl)
		if err != nil {
			logger.L(ctx).Warn("Idempotency store unavailable, request not deduplicated", zap.Error(err))
			c.Next()
			return
		}
		if !fresh {
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewErrorResponse(shared.ErrDuplicateRequest.Code, "A request with this Idempotency-Key was already processed"))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Release(context.WithoutCancel(ctx), scoped); err != nil {
				logger.L(ctx).Warn("Failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
