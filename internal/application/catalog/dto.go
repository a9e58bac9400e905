package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// VariantInput describes one variant in a product request
type VariantInput struct {
	ID             *uuid.UUID      `json:"id"`
	PackingSize    string          `json:"packingSize" binding:"required,max=50"`
	SKU            string          `json:"sku" binding:"max=64"`
	Barcode        string          `json:"barcode" binding:"max=64"`
	RetailPrice    decimal.Decimal `json:"retailPrice"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	MinStockLevel  int64           `json:"minStockLevel" binding:"min=0"`
	OpeningStock   int64           `json:"openingStock" binding:"min=0"`
}

func (v VariantInput) spec() catalog.VariantSpec {
	return catalog.VariantSpec{
		PackingSize:    v.PackingSize,
		SKU:            v.SKU,
		Barcode:        v.Barcode,
		RetailPrice:    v.RetailPrice,
		WholesalePrice: v.WholesalePrice,
		PurchasePrice:  v.PurchasePrice,
		TaxRate:        v.TaxRate,
		MinStockLevel:  v.MinStockLevel,
	}
}

// CreateProductRequest is the body of POST /products
type CreateProductRequest struct {
	Name        string         `json:"name" binding:"required,min=1,max=200"`
	Description string         `json:"description" binding:"max=2000"`
	CategoryID  *uuid.UUID     `json:"categoryId"`
	Variants    []VariantInput `json:"variants" binding:"required,min=1,dive"`
}

// UpdateProductRequest is the body of PUT /products/:id. Variants with an
// id are updated, variants without one are added. Opening stock is only
// honoured for added variants.
type UpdateProductRequest struct {
	Name        string         `json:"name" binding:"required,min=1,max=200"`
	Description string         `json:"description" binding:"max=2000"`
	CategoryID  *uuid.UUID     `json:"categoryId"`
	Variants    []VariantInput `json:"variants" binding:"required,min=1,dive"`
}

// ListProductsRequest holds the query parameters of GET /products
type ListProductsRequest struct {
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"pageSize" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"orderBy"`
	OrderDir   string     `form:"orderDir" binding:"omitempty,oneof=asc desc"`
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"categoryId"`
}

func (r ListProductsRequest) toFilter() catalog.ProductFilter {
	return catalog.ProductFilter{
		Filter: shared.Filter{
			Page:     r.Page,
			PageSize: r.PageSize,
			OrderBy:  r.OrderBy,
			OrderDir: r.OrderDir,
			Search:   r.Search,
		}.Normalize(),
		CategoryID: r.CategoryID,
	}
}

// VariantResponse represents a variant with its computed stock status
type VariantResponse struct {
	ID             uuid.UUID       `json:"id"`
	PackingSize    string          `json:"packingSize"`
	SKU            string          `json:"sku,omitempty"`
	Barcode        string          `json:"barcode,omitempty"`
	RetailPrice    decimal.Decimal `json:"retailPrice"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	MinStockLevel  int64           `json:"minStockLevel"`
	Quantity       int64           `json:"quantity"`
	StockStatus    string          `json:"stockStatus"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	CategoryID   *uuid.UUID        `json:"categoryId,omitempty"`
	CategoryName string            `json:"categoryName"`
	Variants     []VariantResponse `json:"variants"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ToProductResponse converts a product view to a response
func ToProductResponse(v *catalog.ProductView) ProductResponse {
	p := v.Product
	variants := make([]VariantResponse, len(p.Variants))
	for i := range p.Variants {
		pv := &p.Variants[i]
		variants[i] = VariantResponse{
			ID:             pv.ID,
			PackingSize:    pv.PackingSize,
			SKU:            pv.SKU,
			Barcode:        pv.Barcode,
			RetailPrice:    pv.RetailPrice,
			WholesalePrice: pv.WholesalePrice,
			PurchasePrice:  pv.PurchasePrice,
			TaxRate:        pv.TaxRate,
			MinStockLevel:  pv.MinStockLevel,
			Quantity:       pv.Quantity,
			StockStatus:    string(pv.StockStatus()),
		}
	}
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: v.CategoryName,
		Variants:     variants,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// CategoryRequest is the body of category create and update
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a category to a response
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
