package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Service manages the back-office notification feed
type Service struct {
	repo notification.Repository
}

// NewService creates a new notification Service
func NewService(repo notification.Repository) *Service {
	return &Service{repo: repo}
}

// Record persists a draft as an unread notification
func (s *Service) Record(ctx context.Context, d notification.Draft) (*NotificationResponse, error) {
	n, err := notification.New(d)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	resp := ToNotificationResponse(n)
	return &resp, nil
}

// List returns the newest notifications of a tenant first
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, req ListNotificationsRequest) (shared.Paginated[NotificationResponse], error) {
	filter := req.toFilter()
	list, total, err := s.repo.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[NotificationResponse]{}, err
	}
	out := make([]NotificationResponse, len(list))
	for i := range list {
		out[i] = ToNotificationResponse(&list[i])
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}

// MarkRead flags a notification as read
func (s *Service) MarkRead(ctx context.Context, tenantID, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := n.MarkRead(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, err
	}
	resp := ToNotificationResponse(n)
	return &resp, nil
}

// Delete soft-deletes a notification
func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	n, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := n.Delete(); err != nil {
		return err
	}
	return s.repo.Save(ctx, n)
}
