package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/finance"
	"github.com/shopledger/backend/internal/domain/notification"
	"github.com/shopledger/backend/internal/domain/shared"
)

// PartyNames resolves a party id to its display name. An empty name means
// the party is unknown.
type PartyNames interface {
	NameOf(ctx context.Context, tenantID, id uuid.UUID) string
}

// PaymentService records customer receipts and supplier outlays
type PaymentService struct {
	payments  finance.PaymentRepository
	customers PartyNames
	suppliers PartyNames
	now       func() time.Time
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(payments finance.PaymentRepository, customers, suppliers PartyNames) *PaymentService {
	return &PaymentService{
		payments:  payments,
		customers: customers,
		suppliers: suppliers,
		now:       time.Now,
	}
}

// Create records a payment and returns the notification it raises
func (s *PaymentService) Create(ctx context.Context, actor shared.Actor, req PaymentRequest) (*PaymentResponse, []shared.DomainEvent, error) {
	in, err := req.toInput()
	if err != nil {
		return nil, nil, err
	}
	p, err := finance.NewPayment(actor, finance.PartyType(req.PartyType), req.PartyID, in, s.now())
	if err != nil {
		return nil, nil, err
	}
	if err := s.payments.Save(ctx, p); err != nil {
		return nil, nil, err
	}

	var draft notification.Draft
	if p.PartyType == finance.PartyCustomer {
		draft = notification.PaymentReceived(p.PartyID, s.customers.NameOf(ctx, actor.TenantID, p.PartyID), p.Amount)
	} else {
		draft = notification.PaymentOutlay(p.PartyID, s.suppliers.NameOf(ctx, actor.TenantID, p.PartyID), p.Amount)
	}

	resp := ToPaymentResponse(p)
	return &resp, []shared.DomainEvent{notification.NewRequestedEvent(draft.For(actor))}, nil
}

// Update revises a payment. The payment detail is replaced as a whole.
func (s *PaymentService) Update(ctx context.Context, tenantID, id uuid.UUID, req PaymentRequest) (*PaymentResponse, error) {
	p, err := s.payments.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	in, err := req.toInput()
	if err != nil {
		return nil, err
	}
	if err := p.Revise(in); err != nil {
		return nil, err
	}
	if err := s.payments.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToPaymentResponse(p)
	return &resp, nil
}

// GetByID returns a payment
func (s *PaymentService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*PaymentResponse, error) {
	p, err := s.payments.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToPaymentResponse(p)
	return &resp, nil
}

// List returns a page of payments
func (s *PaymentService) List(ctx context.Context, tenantID uuid.UUID, req ListPaymentsRequest) (shared.Paginated[PaymentResponse], error) {
	filter := req.toFilter()
	list, total, err := s.payments.List(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PaymentResponse]{}, err
	}
	out := make([]PaymentResponse, len(list))
	for i := range list {
		out[i] = ToPaymentResponse(&list[i])
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}

// Delete soft-deletes a payment
func (s *PaymentService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	p, err := s.payments.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := p.Delete(); err != nil {
		return err
	}
	return s.payments.Save(ctx, p)
}
