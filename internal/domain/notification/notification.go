package notification

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Type classifies a notification
type Type string

const (
	TypeOrder   Type = "order"
	TypeStock   Type = "stock"
	TypePayment Type = "payment"
	TypeSystem  Type = "system"
)

// IsValid returns true if the type is known
func (t Type) IsValid() bool {
	switch t {
	case TypeOrder, TypeStock, TypePayment, TypeSystem:
		return true
	}
	return false
}

// Draft is a notification that has not been persisted yet
type Draft struct {
	TenantID    uuid.UUID `json:"tenant_id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        Type      `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
}

// For addresses the draft to the actor's tenant and user
func (d Draft) For(actor shared.Actor) Draft {
	d.TenantID = actor.TenantID
	d.UserID = actor.UserID
	return d
}

// Notification is a persisted, per-tenant message shown in the back office.
// It is created unread and only ever marked read or soft-deleted.
type Notification struct {
	shared.TenantEntity
	UserID      uuid.UUID
	Type        Type
	Name        string
	Description string
	Link        string
	IsRead      bool
	IsDeleted   bool
}

// New creates an unread notification from a draft
func New(d Draft) (*Notification, error) {
	if d.TenantID == uuid.Nil {
		return nil, shared.NewValidationError("Notification requires a tenant")
	}
	if !d.Type.IsValid() {
		return nil, shared.NewValidationError("Invalid notification type: " + string(d.Type))
	}
	if strings.TrimSpace(d.Name) == "" {
		return nil, shared.NewValidationError("Notification name cannot be empty")
	}
	return &Notification{
		TenantEntity: shared.NewTenantEntity(d.TenantID),
		UserID:       d.UserID,
		Type:         d.Type,
		Name:         d.Name,
		Description:  d.Description,
		Link:         d.Link,
	}, nil
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() error {
	if n.IsDeleted {
		return shared.NewNotFoundError("Notification")
	}
	n.IsRead = true
	n.Touch()
	return nil
}

// Delete soft-deletes the notification
func (n *Notification) Delete() error {
	if n.IsDeleted {
		return shared.NewNotFoundError("Notification")
	}
	n.IsDeleted = true
	n.Touch()
	return nil
}
