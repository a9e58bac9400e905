package inventory

import (
	"fmt"

	"github.com/shopledger/backend/internal/domain/shared"
)

// SaleDelta is the stock change of selling quantity units
func SaleDelta(quantity int64) int64 { return -quantity }

// PurchaseDelta is the stock change of receiving quantity units
func PurchaseDelta(quantity int64) int64 { return quantity }

// DeleteSaleDelta returns the sold units to stock
func DeleteSaleDelta(quantity int64) int64 { return quantity }

// DeletePurchaseDelta removes the received units from stock
func DeletePurchaseDelta(quantity int64) int64 { return -quantity }

// UpdateSaleDelta is old minus new: a larger new quantity takes more stock
// out, a smaller one returns the difference.
func UpdateSaleDelta(oldQty, newQty int64) int64 { return oldQty - newQty }

// UpdatePurchaseDelta is new minus old: a larger new quantity adds stock,
// a smaller one removes the difference.
func UpdatePurchaseDelta(oldQty, newQty int64) int64 { return newQty - oldQty }

// CheckCreateSale rejects a sale line that exceeds current stock
func CheckCreateSale(v VariantSnapshot, quantity int64) error {
	if v.Quantity < quantity {
		return insufficient("create", v, fmt.Sprintf("create it with %d", quantity))
	}
	return nil
}

// CheckUpdate applies the two-sided update check used by both order flows.
// Raising the quantity requires the increase to fit in current stock.
// Lowering it requires current stock to be at least the decrease, which is
// stricter than a sales update needs; the check is kept as is for both flows.
func CheckUpdate(v VariantSnapshot, oldQty, newQty int64) error {
	var diff int64
	if oldQty < newQty {
		diff = newQty - oldQty
	} else {
		diff = oldQty - newQty
	}
	if v.Quantity < diff {
		return insufficient("update", v, fmt.Sprintf("update it to %d", newQty))
	}
	return nil
}

// CheckDeletePurchase rejects removing more units than are on hand
func CheckDeletePurchase(v VariantSnapshot, quantity int64) error {
	if v.Quantity < quantity {
		return insufficient("delete", v, fmt.Sprintf("remove %d", quantity))
	}
	return nil
}

// CheckAdjustment rejects a manual adjustment that would leave negative stock
func CheckAdjustment(v VariantSnapshot, delta int64) error {
	if v.Quantity+delta < 0 {
		return insufficient("adjust", v, fmt.Sprintf("remove %d", -delta))
	}
	return nil
}

func insufficient(action string, v VariantSnapshot, attempt string) error {
	return shared.NewDomainError(shared.ErrInsufficientStock.Code, fmt.Sprintf(
		"Cannot %s: because %s has only %d in stock, but you are trying to %s.",
		action, v.DisplayName(), v.Quantity, attempt))
}
