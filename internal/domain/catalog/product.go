package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Variant is a packing/SKU configuration of a product and the unit of stock
// tracking. Quantity is owned by the product but only moved by the stock
// ledger engine; catalog edits never touch it.
type Variant struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	PackingSize    string
	SKU            string
	Barcode        string
	RetailPrice    decimal.Decimal
	WholesalePrice decimal.Decimal
	PurchasePrice  decimal.Decimal
	TaxRate        decimal.Decimal
	MinStockLevel  int64
	Quantity       int64
}

// VariantSpec describes the editable attributes of a variant
type VariantSpec struct {
	PackingSize    string
	SKU            string
	Barcode        string
	RetailPrice    decimal.Decimal
	WholesalePrice decimal.Decimal
	PurchasePrice  decimal.Decimal
	TaxRate        decimal.Decimal
	MinStockLevel  int64
}

func (s VariantSpec) validate() error {
	if strings.TrimSpace(s.PackingSize) == "" {
		return shared.NewValidationError("Packing size cannot be empty")
	}
	if s.RetailPrice.IsNegative() || s.WholesalePrice.IsNegative() || s.PurchasePrice.IsNegative() {
		return shared.NewValidationError("Prices cannot be negative")
	}
	if s.TaxRate.IsNegative() || s.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewValidationError("Tax rate must be between 0 and 100")
	}
	if s.MinStockLevel < 0 {
		return shared.NewValidationError("Minimum stock level cannot be negative")
	}
	return nil
}

func (v *Variant) apply(s VariantSpec) {
	v.PackingSize = strings.TrimSpace(s.PackingSize)
	v.SKU = strings.TrimSpace(s.SKU)
	v.Barcode = strings.TrimSpace(s.Barcode)
	v.RetailPrice = s.RetailPrice
	v.WholesalePrice = s.WholesalePrice
	v.PurchasePrice = s.PurchasePrice
	v.TaxRate = s.TaxRate
	v.MinStockLevel = s.MinStockLevel
}

// StockStatus derives the display status of this variant
func (v *Variant) StockStatus() StockStatus {
	return DeriveStockStatus(v.Quantity, v.MinStockLevel)
}

// Product is the catalog aggregate. It owns an ordered list of variants.
type Product struct {
	shared.TenantEntity
	CategoryID  *uuid.UUID
	Name        string
	Description string
	Variants    []Variant
	IsDeleted   bool
}

// NewProduct creates a product with at least one variant. Variant quantities
// start at zero; opening stock is recorded through the stock ledger.
func NewProduct(tenantID uuid.UUID, name, description string, categoryID *uuid.UUID, specs []VariantSpec) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("Product name cannot exceed 200 characters")
	}
	if len(specs) == 0 {
		return nil, shared.NewValidationError("Product must have at least one variant")
	}

	p := &Product{
		TenantEntity: shared.NewTenantEntity(tenantID),
		CategoryID:   categoryID,
		Name:         name,
		Description:  strings.TrimSpace(description),
	}
	for _, s := range specs {
		if _, err := p.AddVariant(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// AddVariant appends a new variant
func (p *Product) AddVariant(s VariantSpec) (*Variant, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.SKU != "" {
		for _, v := range p.Variants {
			if strings.EqualFold(v.SKU, strings.TrimSpace(s.SKU)) {
				return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "Variant SKU already exists: "+s.SKU)
			}
		}
	}
	v := Variant{ID: uuid.New(), ProductID: p.ID}
	v.apply(s)
	p.Variants = append(p.Variants, v)
	p.Touch()
	return &p.Variants[len(p.Variants)-1], nil
}

// UpdateDetails changes the descriptive fields of the product
func (p *Product) UpdateDetails(name, description string, categoryID *uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.CategoryID = categoryID
	p.Touch()
	return nil
}

// UpdateVariant changes prices, codes and the stock threshold of a variant.
// The on-hand quantity is left untouched.
func (p *Product) UpdateVariant(variantID uuid.UUID, s VariantSpec) error {
	if err := s.validate(); err != nil {
		return err
	}
	v := p.Variant(variantID)
	if v == nil {
		return shared.NewNotFoundError("Variant")
	}
	v.apply(s)
	p.Touch()
	return nil
}

// Variant returns the variant with the given id or nil
func (p *Product) Variant(variantID uuid.UUID) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// Delete soft-deletes the product
func (p *Product) Delete() error {
	if p.IsDeleted {
		return shared.NewNotFoundError("Product")
	}
	p.IsDeleted = true
	p.Touch()
	return nil
}
