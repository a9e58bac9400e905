package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/shopledger/backend/internal/application/catalog"
)

// Categories is the category service used by CategoryHandler
type Categories interface {
	Create(ctx context.Context, tenantID uuid.UUID, req catalogapp.CategoryRequest) (*catalogapp.CategoryResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req catalogapp.CategoryRequest) (*catalogapp.CategoryResponse, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]catalogapp.CategoryResponse, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CategoryHandler handles the /categories endpoints
type CategoryHandler struct {
	BaseHandler
	categories Categories
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories Categories) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Create godoc
// @ID           createCategory
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CategoryRequest true "Category"
// @Success      200 {object} APIResponse[catalogapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req catalogapp.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categories.Create(c.Request.Context(), actor.TenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Category created successfully", category)
}

// Update godoc
// @ID           updateCategory
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Param        request body catalogapp.CategoryRequest true "Category"
// @Success      200 {object} APIResponse[catalogapp.CategoryResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req catalogapp.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categories.Update(c.Request.Context(), actor.TenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Category updated successfully", category)
}

// List godoc
// @ID           listCategories
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} APIResponse[[]catalogapp.CategoryResponse]
// @Security     BearerAuth
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	categories, err := h.categories.List(c.Request.Context(), actor.TenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Categories retrieved successfully", categories)
}

// Delete godoc
// @ID           deleteCategory
// @Summary      Delete a category
// @Description  Products of a deleted category are listed under "Unknown Category"
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} SuccessResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), actor.TenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Category deleted successfully", nil)
}
