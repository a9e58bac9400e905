package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormQuantityStore implements inventory.QuantityStore on product_variants.
// Adjust is a single-statement increment, so concurrent adjustments of the
// same variant never lose updates. Variants of soft-deleted products are
// invisible unless the store comes from IncludingDeleted.
type GormQuantityStore struct {
	db             *gorm.DB
	includeDeleted bool
}

// NewGormQuantityStore creates a new GormQuantityStore
func NewGormQuantityStore(db *gorm.DB) *GormQuantityStore {
	return &GormQuantityStore{db: db}
}

// IncludingDeleted returns a view of the store that also reaches variants
// of soft-deleted products
func (s *GormQuantityStore) IncludingDeleted() inventory.QuantityStore {
	return &GormQuantityStore{db: s.db, includeDeleted: true}
}

type variantSnapshotRow struct {
	ProductName   string
	PackingSize   string
	Quantity      int64
	MinStockLevel int64
}

// GetVariant reads the current quantity and threshold of a variant
func (s *GormQuantityStore) GetVariant(ctx context.Context, tenantID uuid.UUID, ref inventory.VariantRef) (*inventory.VariantSnapshot, error) {
	var row variantSnapshotRow
	query := s.db.WithContext(ctx).
		Table("product_variants AS v").
		Select("p.name AS product_name, v.packing_size, v.quantity, v.min_stock_level").
		Joins("JOIN products AS p ON p.id = v.product_id AND p.tenant_id = v.tenant_id").
		Where("v.tenant_id = ? AND v.product_id = ? AND v.id = ?", tenantID, ref.ProductID, ref.VariantID)
	if !s.includeDeleted {
		query = query.Where("p.is_deleted = ?", false)
	}
	err := query.Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Product variant")
		}
		return nil, err
	}
	return &inventory.VariantSnapshot{
		Ref:           ref,
		ProductName:   row.ProductName,
		PackingSize:   row.PackingSize,
		Quantity:      row.Quantity,
		MinStockLevel: row.MinStockLevel,
	}, nil
}

// Adjust adds delta to the variant's quantity and returns the new quantity.
// No sufficiency check happens here. The product's deleted flag is checked
// in the same statement.
func (s *GormQuantityStore) Adjust(ctx context.Context, tenantID uuid.UUID, ref inventory.VariantRef, delta int64) (int64, error) {
	var rows []struct {
		Quantity int64
	}
	stmt := `UPDATE product_variants SET quantity = quantity + ? ` +
		`WHERE tenant_id = ? AND product_id = ? AND id = ?`
	args := []any{delta, tenantID, ref.ProductID, ref.VariantID}
	if !s.includeDeleted {
		stmt += ` AND EXISTS (SELECT 1 FROM products AS p ` +
			`WHERE p.id = product_variants.product_id AND p.tenant_id = product_variants.tenant_id AND p.is_deleted = ?)`
		args = append(args, false)
	}
	err := s.db.WithContext(ctx).
		Raw(stmt+` RETURNING quantity`, args...).
		Scan(&rows).Error
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, shared.NewNotFoundError("Product variant")
	}
	return rows[0].Quantity, nil
}
