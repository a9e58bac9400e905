package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create inserts a notification
func (r *GormNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := &models.NotificationModel{}
	model.FromDomain(n)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a live notification
func (r *GormNotificationRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).
		Scopes(tenantScope(tenantID)).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Notification")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns live notifications, newest first unless told otherwise
func (r *GormNotificationRepository) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]notification.Notification, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Scopes(tenantScope(tenantID)).
		Where("is_deleted = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []models.NotificationModel
	if err := paginate(query, filter, NotificationSortFields).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]notification.Notification, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Save writes the read and deleted flags back
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := &models.NotificationModel{}
	model.FromDomain(n)
	return r.db.WithContext(ctx).Save(model).Error
}
