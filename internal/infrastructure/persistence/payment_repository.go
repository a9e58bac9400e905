package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/finance"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPaymentRepository implements finance.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a live payment
func (r *GormPaymentRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*finance.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Payment")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of live payments
func (r *GormPaymentRepository) List(ctx context.Context, tenantID uuid.UUID, filter finance.PaymentFilter) ([]finance.Payment, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Scopes(tenantScope(tenantID)).
		Where("is_deleted = ?", false)
	if filter.PartyType != "" {
		query = query.Where("party_type = ?", string(filter.PartyType))
	}
	if filter.PartyID != nil {
		query = query.Where("party_id = ?", *filter.PartyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.PaymentModel
	if err := paginate(query, filter.Filter, PaymentSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]finance.Payment, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, p *finance.Payment) error {
	model := &models.PaymentModel{}
	model.FromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}
