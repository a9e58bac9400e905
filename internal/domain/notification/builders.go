package notification

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VariantLevel is the stock reading the low-stock check works on
type VariantLevel struct {
	ProductName   string
	PackingSize   string
	Quantity      int64
	MinStockLevel int64
}

// LowStockAlert returns a stock notification when the quantity is below the
// variant's minimum level. Zero stock is reported as out of stock.
func LowStockAlert(level VariantLevel) (Draft, bool) {
	if level.Quantity >= level.MinStockLevel {
		return Draft{}, false
	}
	name := "Low Stock Alert"
	if level.Quantity == 0 {
		name = "Out of Stock Alert"
	}
	return Draft{
		Type: TypeStock,
		Name: name,
		Description: fmt.Sprintf("Product %s %s is running low on stock. Current stock is %d.",
			level.ProductName, level.PackingSize, level.Quantity),
		Link: "/products",
	}, true
}

// OrderCreated announces a new sales order
func OrderCreated(orderID uuid.UUID, invoiceNumber, placedBy string) Draft {
	if placedBy == "" {
		placedBy = "Unknown User"
	}
	return Draft{
		Type:        TypeOrder,
		Name:        "New Sales Order Created",
		Description: fmt.Sprintf("Order %s has been placed by %s.", invoiceNumber, placedBy),
		Link:        fmt.Sprintf("/orders/%s", orderID),
	}
}

// PaymentReceived announces a customer payment
func PaymentReceived(customerID uuid.UUID, customerName string, amount decimal.Decimal) Draft {
	if customerName == "" {
		customerName = "Unknown Customer"
	}
	return Draft{
		Type:        TypePayment,
		Name:        "Payment Received",
		Description: fmt.Sprintf("Payment of %s has been received from %s.", amount.String(), customerName),
		Link:        fmt.Sprintf("/customers/%s", customerID),
	}
}

// PaymentOutlay announces a payment made to a supplier
func PaymentOutlay(supplierID uuid.UUID, supplierName string, amount decimal.Decimal) Draft {
	if supplierName == "" {
		supplierName = "Unknown Supplier"
	}
	return Draft{
		Type:        TypePayment,
		Name:        "Payment Outlay",
		Description: fmt.Sprintf("Payment outlay of %s has been made for %s.", amount.String(), supplierName),
		Link:        fmt.Sprintf("/suppliers/%s", supplierID),
	}
}
