package trade

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// SalesOrder is a checkout of products to a customer
type SalesOrder struct {
	Document
	CustomerType string
	CustomerID   uuid.UUID
}

// NewSalesOrder validates the input and creates a sales order
func NewSalesOrder(actor shared.Actor, customerType string, customerID uuid.UUID, in Input, now time.Time) (*SalesOrder, error) {
	if strings.TrimSpace(customerType) == "" {
		return nil, shared.NewValidationError("Customer type is required")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("Customer is required")
	}
	if err := in.validate(true); err != nil {
		return nil, err
	}
	return &SalesOrder{
		Document:     newDocument(actor, in, now),
		CustomerType: strings.TrimSpace(customerType),
		CustomerID:   customerID,
	}, nil
}

// Revise replaces the editable part of the order
func (o *SalesOrder) Revise(in Input) error {
	if o.IsDeleted {
		return shared.NewNotFoundError("Order")
	}
	if err := in.validate(true); err != nil {
		return err
	}
	o.apply(in)
	return nil
}

// PreviousQuantity returns the quantity the order holds for the line's
// product and variant, or 0 when the line is new.
func (o *SalesOrder) PreviousQuantity(l Line) int64 {
	for _, old := range o.Lines {
		if old.ProductID == l.ProductID && old.VariantID == l.VariantID {
			return old.Quantity
		}
	}
	return 0
}

// Delete soft-deletes the order
func (o *SalesOrder) Delete() error {
	return o.markDeleted("Order")
}
