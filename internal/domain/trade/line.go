package trade

import (
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Line is one product line of a sales or purchase order. Prices and tax
// figures are copies frozen at order time.
type Line struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	Unit      int64
	Carton    int64
	Quantity  int64
	MRP       decimal.Decimal
	Price     decimal.Decimal
	GSTRate   decimal.Decimal
	GSTAmount decimal.Decimal
	Total     decimal.Decimal
}

// Ref returns the variant key of the line
func (l Line) Ref() inventory.VariantRef {
	return inventory.VariantRef{ProductID: l.ProductID, VariantID: l.VariantID}
}

// Validate checks the line shape
func (l Line) Validate() error {
	if l.ProductID == uuid.Nil || l.VariantID == uuid.Nil {
		return shared.NewValidationError("Each product line requires productId and variantId")
	}
	if l.Unit < 1 || l.Carton < 1 || l.Quantity < 1 {
		return shared.NewValidationError("Unit, carton and quantity must be at least 1")
	}
	for _, d := range []decimal.Decimal{l.MRP, l.Price, l.GSTRate, l.GSTAmount, l.Total} {
		if d.IsNegative() {
			return shared.NewValidationError("Line amounts cannot be negative")
		}
	}
	return nil
}

func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return shared.NewValidationError("Order must contain at least one product")
	}
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		// one line per variant; stock checks and update deltas are per line
		if _, dup := seen[l.VariantID]; dup {
			return shared.NewValidationError("Each product variant may appear only once per order")
		}
		seen[l.VariantID] = struct{}{}
	}
	return nil
}

// Totals are the client-computed order amounts, stored as given
type Totals struct {
	SubTotal decimal.Decimal
	TotalGST decimal.Decimal
	RoundOff decimal.Decimal
	Total    decimal.Decimal
}

func (t Totals) validate() error {
	if t.SubTotal.IsNegative() || t.TotalGST.IsNegative() || t.Total.IsNegative() {
		return shared.NewValidationError("Order totals cannot be negative")
	}
	return nil
}
