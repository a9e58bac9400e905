package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// listOrders applies the shared order filter to a sales or purchase query
func listOrders(query *gorm.DB, filter trade.OrderFilter, partyColumn string) *gorm.DB {
	query = query.Where("is_deleted = ?", false)
	if filter.PartyID != nil {
		query = query.Where(partyColumn+" = ?", *filter.PartyID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		query = query.Where("LOWER(invoice_number) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	return query
}

// saveLiveHeader updates an order header only while the stored row is not
// deleted, so of two racing deletes only the first one lands.
func saveLiveHeader(tx *gorm.DB, model any, tenantID, id uuid.UUID, resource string) error {
	result := tx.Model(model).
		Scopes(tenantScope(tenantID)).
		Where("id = ? AND is_deleted = ?", id, false).
		Select("*").
		Omit("ID", "TenantID", "CreatedAt", "Lines").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError(resource)
	}
	return nil
}

// GormSalesOrderRepository implements trade.SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByID finds an order with its lines. Soft-deleted orders are returned
// so the caller can tell "already deleted" from a live order.
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*trade.SalesOrder, error) {
	var model models.SalesOrderModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Preload("Lines", orderedLines).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Order")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of live orders
func (r *GormSalesOrderRepository) List(ctx context.Context, tenantID uuid.UUID, filter trade.OrderFilter) ([]trade.SalesOrder, int64, error) {
	query := listOrders(r.db.WithContext(ctx).Model(&models.SalesOrderModel{}).Scopes(tenantScope(tenantID)), filter, "customer_id")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.SalesOrderModel
	if err := paginate(query, filter.Filter, OrderSortFields).
		Preload("Lines", orderedLines).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]trade.SalesOrder, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Create inserts the order and its lines in one transaction
func (r *GormSalesOrderRepository) Create(ctx context.Context, order *trade.SalesOrder) error {
	model := &models.SalesOrderModel{}
	model.FromDomain(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
}

// Save updates the order header and replaces its lines. An order already
// deleted in storage is not found.
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *trade.SalesOrder) error {
	model := &models.SalesOrderModel{}
	model.FromDomain(order)
	lines := model.Lines
	model.Lines = nil
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveLiveHeader(tx, model, order.TenantID, order.ID, "Order"); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.SalesOrderLineModel{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

// GormPurchaseOrderRepository implements trade.PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order with its lines, deleted ones included
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*trade.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Preload("Lines", orderedLines).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Purchase order")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of live purchase orders
func (r *GormPurchaseOrderRepository) List(ctx context.Context, tenantID uuid.UUID, filter trade.OrderFilter) ([]trade.PurchaseOrder, int64, error) {
	query := listOrders(r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).Scopes(tenantScope(tenantID)), filter, "supplier_id")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.PurchaseOrderModel
	if err := paginate(query, filter.Filter, OrderSortFields).
		Preload("Lines", orderedLines).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]trade.PurchaseOrder, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Create inserts the purchase order and its lines in one transaction
func (r *GormPurchaseOrderRepository) Create(ctx context.Context, order *trade.PurchaseOrder) error {
	model := &models.PurchaseOrderModel{}
	model.FromDomain(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
}

// Save updates the purchase order header and replaces its lines. A
// purchase order already deleted in storage is not found.
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *trade.PurchaseOrder) error {
	model := &models.PurchaseOrderModel{}
	model.FromDomain(order)
	lines := model.Lines
	model.Lines = nil
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveLiveHeader(tx, model, order.TenantID, order.ID, "Purchase order"); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.PurchaseOrderLineModel{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}
