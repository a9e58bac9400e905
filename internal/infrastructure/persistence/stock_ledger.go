package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStockLedger implements inventory.StockLedger. Rows are insert-only.
type GormStockLedger struct {
	db *gorm.DB
}

// NewGormStockLedger creates a new GormStockLedger
func NewGormStockLedger(db *gorm.DB) *GormStockLedger {
	return &GormStockLedger{db: db}
}

// Append inserts one movement
func (l *GormStockLedger) Append(ctx context.Context, movement *inventory.StockMovement) error {
	model := &models.StockMovementModel{}
	model.FromDomain(movement)
	return l.db.WithContext(ctx).Create(model).Error
}

// List returns a page of movements, newest first by default
func (l *GormStockLedger) List(ctx context.Context, tenantID uuid.UUID, filter inventory.StockMovementFilter) ([]inventory.StockMovement, int64, error) {
	query := l.db.WithContext(ctx).
		Model(&models.StockMovementModel{}).
		Scopes(tenantScope(tenantID))
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.VariantID != nil {
		query = query.Where("variant_id = ?", *filter.VariantID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.StockMovementModel
	if err := paginate(query, filter.Filter, StockMovementSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]inventory.StockMovement, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}
