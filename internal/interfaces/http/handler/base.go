// Package handler holds the gin handlers of the ShopLedger API.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/logger"
	"github.com/shopledger/backend/internal/interfaces/http/dto"
	"github.com/shopledger/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 envelope with an optional payload
func (h *BaseHandler) Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(message, data))
}

// Paged sends one page of results with paging metadata
func (h *BaseHandler) Paged(c *gin.Context, message string, items any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewListResponse(message, items, total, page, pageSize))
}

// Error sends an error envelope
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 INVALID_INPUT response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, shared.ErrInvalidInput.Code, message)
}

// BindError reports a binding or validation failure
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	_ = c.Error(err)
	h.BadRequest(c, middleware.ValidationMessage(err))
}

// HandleError renders a domain error with its mapped status. Anything
// else is logged with its cause and answered with a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.ErrorCodeToHTTPStatus(domainErr.Code)
		if status < http.StatusInternalServerError {
			h.Error(c, status, domainErr.Code, domainErr.Message)
			return
		}
	}

	logger.L(c.Request.Context()).Error("Request failed",
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	h.Error(c, http.StatusInternalServerError, dto.CodeInternal, dto.InternalErrorMessage)
}

// actor returns the authenticated actor or answers 401
func (h *BaseHandler) actor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, shared.ErrUnauthorized.Code, "Authentication required")
		return shared.Actor{}, false
	}
	return actor, true
}

// uuidParam parses a path parameter or answers 400
func (h *BaseHandler) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// uuidQuery parses a required query parameter or answers 400
func (h *BaseHandler) uuidQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		h.BadRequest(c, name+" query parameter is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// publish dispatches workflow events. Delivery is best effort: a failure is
// logged and never changes the response.
func publish(c *gin.Context, bus shared.EventPublisher, events []shared.DomainEvent) {
	if bus == nil || len(events) == 0 {
		return
	}
	ctx := c.Request.Context()
	if err := bus.Publish(ctx, events...); err != nil {
		logger.L(ctx).Warn("Failed to publish domain events",
			zap.Int("count", len(events)),
			zap.Error(err),
		)
	}
}
