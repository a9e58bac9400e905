package models

import (
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/notification"
)

// NotificationModel is the persistence model for notification.Notification
type NotificationModel struct {
	TenantModel
	UserID      uuid.UUID `gorm:"type:uuid;not null"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Link        string    `gorm:"type:varchar(255)"`
	IsRead      bool      `gorm:"not null;default:false"`
	IsDeleted   bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		TenantEntity: m.TenantEntity(),
		UserID:       m.UserID,
		Type:         notification.Type(m.Type),
		Name:         m.Name,
		Description:  m.Description,
		Link:         m.Link,
		IsRead:       m.IsRead,
		IsDeleted:    m.IsDeleted,
	}
}

func (m *NotificationModel) FromDomain(n *notification.Notification) {
	m.FromDomainTenantEntity(n.TenantEntity)
	m.UserID = n.UserID
	m.Type = string(n.Type)
	m.Name = n.Name
	m.Description = n.Description
	m.Link = n.Link
	m.IsRead = n.IsRead
	m.IsDeleted = n.IsDeleted
}
