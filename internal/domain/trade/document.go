package trade

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// Input carries the client-editable part of an order
type Input struct {
	Lines         []Line
	Totals        Totals
	PaymentMethod string
	PaymentDetail shared.PaymentDetail
	PaymentStatus string
	Notes         string
	CaptureDate   *time.Time
}

func (in Input) validate(requireMethod bool) error {
	if err := validateLines(in.Lines); err != nil {
		return err
	}
	if err := in.Totals.validate(); err != nil {
		return err
	}
	if requireMethod && strings.TrimSpace(in.PaymentMethod) == "" {
		return shared.NewValidationError("Payment method is required")
	}
	if strings.TrimSpace(in.PaymentStatus) == "" {
		return shared.NewValidationError("Payment status is required")
	}
	return nil
}

// Document holds what sales and purchase orders have in common. Documents
// are soft-deleted only so ledger history keeps its references.
type Document struct {
	shared.TenantEntity
	UserID        uuid.UUID
	InvoiceNumber string
	Lines         []Line
	Totals        Totals
	PaymentMethod string
	PaymentDetail shared.PaymentDetail
	PaymentStatus string
	Notes         string
	CaptureDate   time.Time
	IsDeleted     bool
}

func newDocument(actor shared.Actor, in Input, now time.Time) Document {
	d := Document{
		TenantEntity:  shared.NewTenantEntity(actor.TenantID),
		UserID:        actor.UserID,
		InvoiceNumber: NewInvoiceNumber(now),
		CaptureDate:   now,
	}
	d.apply(in)
	return d
}

func (d *Document) apply(in Input) {
	d.Lines = append([]Line(nil), in.Lines...)
	d.Totals = in.Totals
	d.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	d.PaymentDetail = in.PaymentDetail
	d.PaymentStatus = strings.TrimSpace(in.PaymentStatus)
	d.Notes = strings.TrimSpace(in.Notes)
	if in.CaptureDate != nil {
		d.CaptureDate = *in.CaptureDate
	}
	d.Touch()
}

// markDeleted flips the soft-delete flag. A document that is already deleted
// is reported as not found.
func (d *Document) markDeleted(resource string) error {
	if d.IsDeleted {
		return shared.NewNotFoundError(resource)
	}
	d.IsDeleted = true
	d.Touch()
	return nil
}

// NewInvoiceNumber returns INV-YYYYMMDD-<unix millis>, the date taken in UTC
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%d", now.UTC().Format("20060102"), now.UnixMilli())
}
