package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
)

// PurchaseOrder records products received from a supplier
type PurchaseOrder struct {
	Document
	SupplierID uuid.UUID
}

// NewPurchaseOrder validates the input and creates a purchase order.
// A payment method is optional for purchases.
func NewPurchaseOrder(actor shared.Actor, supplierID uuid.UUID, in Input, now time.Time) (*PurchaseOrder, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewValidationError("Supplier is required")
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}
	return &PurchaseOrder{
		Document:   newDocument(actor, in, now),
		SupplierID: supplierID,
	}, nil
}

// Revise replaces the editable part of the purchase order
func (o *PurchaseOrder) Revise(in Input) error {
	if o.IsDeleted {
		return shared.NewNotFoundError("Purchase order")
	}
	if err := in.validate(false); err != nil {
		return err
	}
	o.apply(in)
	return nil
}

// PreviousQuantity returns the quantity held for the line's variant.
// Purchase lines are matched by variant only.
func (o *PurchaseOrder) PreviousQuantity(l Line) int64 {
	for _, old := range o.Lines {
		if old.VariantID == l.VariantID {
			return old.Quantity
		}
	}
	return 0
}

// Delete soft-deletes the purchase order
func (o *PurchaseOrder) Delete() error {
	return o.markDeleted("Purchase order")
}
