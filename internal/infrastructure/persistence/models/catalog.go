package models

import (
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for catalog.Category
type CategoryModel struct {
	TenantModel
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	IsDeleted   bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to a domain Category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		TenantEntity: m.TenantEntity(),
		Name:         m.Name,
		Description:  m.Description,
		IsDeleted:    m.IsDeleted,
	}
}

// FromDomain populates the model from a domain Category
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainTenantEntity(c.TenantEntity)
	m.Name = c.Name
	m.Description = c.Description
	m.IsDeleted = c.IsDeleted
}

// ProductModel is the persistence model for catalog.Product
type ProductModel struct {
	TenantModel
	CategoryID  *uuid.UUID            `gorm:"type:uuid;index"`
	Name        string                `gorm:"type:varchar(200);not null"`
	Description string                `gorm:"type:text"`
	IsDeleted   bool                  `gorm:"not null;default:false"`
	Variants    []ProductVariantModel `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel is a row of product_variants. Quantity is only ever
// changed with an atomic increment, never through Save.
type ProductVariantModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_variant_lookup,priority:1"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_variant_lookup,priority:2"`
	Position       int             `gorm:"not null;default:0"`
	PackingSize    string          `gorm:"type:varchar(50);not null"`
	SKU            string          `gorm:"column:sku;type:varchar(64)"`
	Barcode        string          `gorm:"type:varchar(64);index"`
	RetailPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	WholesalePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PurchasePrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	MinStockLevel  int64           `gorm:"not null;default:0"`
	Quantity       int64           `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// VariantUpdatableColumns lists the columns Save may write on an existing
// variant. quantity is deliberately absent.
var VariantUpdatableColumns = []string{
	"position", "packing_size", "sku", "barcode", "retail_price",
	"wholesale_price", "purchase_price", "tax_rate", "min_stock_level",
}

// ToDomain converts the model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		TenantEntity: m.TenantEntity(),
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Description:  m.Description,
		IsDeleted:    m.IsDeleted,
		Variants:     make([]catalog.Variant, len(m.Variants)),
	}
	for i, v := range m.Variants {
		p.Variants[i] = catalog.Variant{
			ID:             v.ID,
			ProductID:      v.ProductID,
			PackingSize:    v.PackingSize,
			SKU:            v.SKU,
			Barcode:        v.Barcode,
			RetailPrice:    v.RetailPrice,
			WholesalePrice: v.WholesalePrice,
			PurchasePrice:  v.PurchasePrice,
			TaxRate:        v.TaxRate,
			MinStockLevel:  v.MinStockLevel,
			Quantity:       v.Quantity,
		}
	}
	return p
}

// FromDomain populates the model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainTenantEntity(p.TenantEntity)
	m.CategoryID = p.CategoryID
	m.Name = p.Name
	m.Description = p.Description
	m.IsDeleted = p.IsDeleted
	m.Variants = make([]ProductVariantModel, len(p.Variants))
	for i, v := range p.Variants {
		m.Variants[i] = ProductVariantModel{
			ID:             v.ID,
			TenantID:       p.TenantID,
			ProductID:      p.ID,
			Position:       i,
			PackingSize:    v.PackingSize,
			SKU:            v.SKU,
			Barcode:        v.Barcode,
			RetailPrice:    v.RetailPrice,
			WholesalePrice: v.WholesalePrice,
			PurchasePrice:  v.PurchasePrice,
			TaxRate:        v.TaxRate,
			MinStockLevel:  v.MinStockLevel,
			Quantity:       v.Quantity,
		}
	}
}
