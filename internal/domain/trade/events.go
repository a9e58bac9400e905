package trade

import (
	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeSalesOrder    = "SalesOrder"
	AggregateTypePurchaseOrder = "PurchaseOrder"
)

// Event type constants
const (
	EventTypeSalesOrderCreated    = "SalesOrderCreated"
	EventTypeSalesOrderUpdated    = "SalesOrderUpdated"
	EventTypeSalesOrderDeleted    = "SalesOrderDeleted"
	EventTypePurchaseOrderCreated = "PurchaseOrderCreated"
	EventTypePurchaseOrderUpdated = "PurchaseOrderUpdated"
	EventTypePurchaseOrderDeleted = "PurchaseOrderDeleted"
)

// OrderEvent is raised for every sales or purchase order lifecycle change
type OrderEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID       `json:"order_id"`
	InvoiceNumber string          `json:"invoice_number"`
	PartyID       uuid.UUID       `json:"party_id"`
	UserID        uuid.UUID       `json:"user_id"`
	LineCount     int             `json:"line_count"`
	Total         decimal.Decimal `json:"total"`
}

func newOrderEvent(eventType, aggType string, d *Document, partyID uuid.UUID) *OrderEvent {
	return &OrderEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, aggType, d.ID, d.TenantID),
		OrderID:         d.ID,
		InvoiceNumber:   d.InvoiceNumber,
		PartyID:         partyID,
		UserID:          d.UserID,
		LineCount:       len(d.Lines),
		Total:           d.Totals.Total,
	}
}

// NewSalesOrderEvent creates an event of the given type for a sales order
func NewSalesOrderEvent(eventType string, o *SalesOrder) *OrderEvent {
	return newOrderEvent(eventType, AggregateTypeSalesOrder, &o.Document, o.CustomerID)
}

// NewPurchaseOrderEvent creates an event of the given type for a purchase order
func NewPurchaseOrderEvent(eventType string, o *PurchaseOrder) *OrderEvent {
	return newOrderEvent(eventType, AggregateTypePurchaseOrder, &o.Document, o.SupplierID)
}
