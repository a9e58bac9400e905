package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PartyType tells whether a payment was received from a customer or paid
// out to a supplier.
type PartyType string

const (
	PartyCustomer PartyType = "customer"
	PartySupplier PartyType = "supplier"
)

// IsValid returns true if the party type is known
func (p PartyType) IsValid() bool {
	return p == PartyCustomer || p == PartySupplier
}

// PaymentInput carries the editable fields of a payment
type PaymentInput struct {
	Amount      decimal.Decimal
	PaymentType string
	PaymentMode string
	Detail      shared.PaymentDetail
	Notes       string
	CaptureDate *time.Time
}

func (in PaymentInput) validate() error {
	if !in.Amount.IsPositive() {
		return shared.NewValidationError("Payment amount must be positive")
	}
	if strings.TrimSpace(in.PaymentType) == "" {
		return shared.NewValidationError("Payment type is required")
	}
	if strings.TrimSpace(in.PaymentMode) == "" {
		return shared.NewValidationError("Payment mode is required")
	}
	return nil
}

// Payment is money received from a customer or paid to a supplier.
// Detail fields are opaque references; no gateway is contacted.
type Payment struct {
	shared.TenantEntity
	UserID      uuid.UUID
	PartyType   PartyType
	PartyID     uuid.UUID
	Amount      decimal.Decimal
	PaymentType string
	PaymentMode string
	Detail      shared.PaymentDetail
	Notes       string
	CaptureDate time.Time
	IsDeleted   bool
}

// NewPayment records a payment for a party
func NewPayment(actor shared.Actor, partyType PartyType, partyID uuid.UUID, in PaymentInput, now time.Time) (*Payment, error) {
	if !partyType.IsValid() {
		return nil, shared.NewValidationError("Party type must be customer or supplier")
	}
	if partyID == uuid.Nil {
		return nil, shared.NewValidationError("Party is required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &Payment{
		TenantEntity: shared.NewTenantEntity(actor.TenantID),
		UserID:       actor.UserID,
		PartyType:    partyType,
		PartyID:      partyID,
		CaptureDate:  now,
	}
	p.apply(in)
	return p, nil
}

func (p *Payment) apply(in PaymentInput) {
	p.Amount = in.Amount
	p.PaymentType = strings.TrimSpace(in.PaymentType)
	p.PaymentMode = strings.TrimSpace(in.PaymentMode)
	// the detail is replaced as a whole so a stale reference of another
	// kind never survives an edit
	p.Detail = in.Detail
	p.Notes = strings.TrimSpace(in.Notes)
	if in.CaptureDate != nil {
		p.CaptureDate = *in.CaptureDate
	}
	p.Touch()
}

// Revise updates the payment
func (p *Payment) Revise(in PaymentInput) error {
	if p.IsDeleted {
		return shared.NewNotFoundError("Payment")
	}
	if err := in.validate(); err != nil {
		return err
	}
	p.apply(in)
	return nil
}

// Delete soft-deletes the payment
func (p *Payment) Delete() error {
	if p.IsDeleted {
		return shared.NewNotFoundError("Payment")
	}
	p.IsDeleted = true
	p.Touch()
	return nil
}
