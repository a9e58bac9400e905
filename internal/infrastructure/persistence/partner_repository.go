package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/partner"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

func searchParties(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = query.Where("is_deleted = ?", false)
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}
	return query
}

func phoneTaken(ctx context.Context, db *gorm.DB, model any, tenantID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error) {
	if strings.TrimSpace(phone) == "" {
		return false, nil
	}
	query := db.WithContext(ctx).Model(model).
		Scopes(tenantScope(tenantID)).
		Where("phone = ? AND is_deleted = ?", phone, false)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a live customer
func (r *GormCustomerRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Customer")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of live customers
func (r *GormCustomerRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, int64, error) {
	query := searchParties(r.db.WithContext(ctx).Model(&models.CustomerModel{}).Scopes(tenantScope(tenantID)), filter)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.CustomerModel
	if err := paginate(query, filter, PartySortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]partner.Customer, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// ExistsByPhone reports whether another live customer uses the phone
func (r *GormCustomerRepository) ExistsByPhone(ctx context.Context, tenantID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error) {
	return phoneTaken(ctx, r.db, &models.CustomerModel{}, tenantID, phone, excludeID)
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, c *partner.Customer) error {
	model := &models.CustomerModel{}
	model.FromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormSupplierRepository implements partner.SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a live supplier
func (r *GormSupplierRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*partner.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Supplier")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of live suppliers
func (r *GormSupplierRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Supplier, int64, error) {
	query := searchParties(r.db.WithContext(ctx).Model(&models.SupplierModel{}).Scopes(tenantScope(tenantID)), filter)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.SupplierModel
	if err := paginate(query, filter, PartySortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]partner.Supplier, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// ExistsByPhone reports whether another live supplier uses the phone
func (r *GormSupplierRepository) ExistsByPhone(ctx context.Context, tenantID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error) {
	return phoneTaken(ctx, r.db, &models.SupplierModel{}, tenantID, phone, excludeID)
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, s *partner.Supplier) error {
	model := &models.SupplierModel{}
	model.FromDomain(s)
	return r.db.WithContext(ctx).Save(model).Error
}
