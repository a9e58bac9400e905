package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// LineInput is one product line of an order request
type LineInput struct {
	ProductID uuid.UUID       `json:"productId" binding:"required"`
	VariantID uuid.UUID       `json:"variantId" binding:"required"`
	Unit      int64           `json:"unit" binding:"required,min=1"`
	Carton    int64           `json:"carton" binding:"required,min=1"`
	Quantity  int64           `json:"quantity" binding:"required,min=1"`
	MRP       decimal.Decimal `json:"mrp"`
	Price     decimal.Decimal `json:"price"`
	GSTRate   decimal.Decimal `json:"gstRate"`
	GSTAmount decimal.Decimal `json:"gstAmount"`
	Total     decimal.Decimal `json:"total"`
}

func (l LineInput) toDomain() trade.Line {
	return trade.Line{
		ProductID: l.ProductID,
		VariantID: l.VariantID,
		Unit:      l.Unit,
		Carton:    l.Carton,
		Quantity:  l.Quantity,
		MRP:       l.MRP,
		Price:     l.Price,
		GSTRate:   l.GSTRate,
		GSTAmount: l.GSTAmount,
		Total:     l.Total,
	}
}

// DocumentInput carries the fields shared by sales and purchase requests
type DocumentInput struct {
	Products      []LineInput     `json:"products" binding:"required,min=1,dive"`
	SubTotal      decimal.Decimal `json:"subTotal"`
	TotalGST      decimal.Decimal `json:"totalGst"`
	RoundOff      decimal.Decimal `json:"roundOff"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod" binding:"max=30"`
	PaymentStatus string          `json:"paymentStatus" binding:"required,max=30"`
	Notes         string          `json:"notes" binding:"max=2000"`
	CaptureDate   *time.Time      `json:"captureDate"`
	shared.PaymentFields
}

func (d DocumentInput) toDomain() (trade.Input, error) {
	detail, err := d.PaymentFields.PaymentDetail()
	if err != nil {
		return trade.Input{}, err
	}
	lines := make([]trade.Line, len(d.Products))
	for i, l := range d.Products {
		lines[i] = l.toDomain()
	}
	return trade.Input{
		Lines: lines,
		Totals: trade.Totals{
			SubTotal: d.SubTotal,
			TotalGST: d.TotalGST,
			RoundOff: d.RoundOff,
			Total:    d.Total,
		},
		PaymentMethod: d.PaymentMethod,
		PaymentDetail: detail,
		PaymentStatus: d.PaymentStatus,
		Notes:         d.Notes,
		CaptureDate:   d.CaptureDate,
	}, nil
}

// CreateSalesOrderRequest is the body of POST /order
type CreateSalesOrderRequest struct {
	CustomerType string    `json:"customerType" binding:"required,max=30"`
	CustomerID   uuid.UUID `json:"customerId" binding:"required"`
	DocumentInput
}

// UpdateSalesOrderRequest is the body of PUT /order
type UpdateSalesOrderRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	DocumentInput
}

// CreatePurchaseOrderRequest is the body of POST /purchase-order
type CreatePurchaseOrderRequest struct {
	SupplierID uuid.UUID `json:"supplierId" binding:"required"`
	DocumentInput
}

// UpdatePurchaseOrderRequest is the body of PUT /purchase-order
type UpdatePurchaseOrderRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	DocumentInput
}

// ListOrdersRequest holds the query parameters of the order list endpoints
type ListOrdersRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"orderBy"`
	OrderDir string `form:"orderDir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}

func (r ListOrdersRequest) toFilter(partyID *uuid.UUID) trade.OrderFilter {
	return trade.OrderFilter{
		Filter: shared.Filter{
			Page:     r.Page,
			PageSize: r.PageSize,
			OrderBy:  r.OrderBy,
			OrderDir: r.OrderDir,
			Search:   r.Search,
		}.Normalize(),
		PartyID: partyID,
	}
}

// LineResponse is one product line of an order
type LineResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	VariantID uuid.UUID       `json:"variantId"`
	Unit      int64           `json:"unit"`
	Carton    int64           `json:"carton"`
	Quantity  int64           `json:"quantity"`
	MRP       decimal.Decimal `json:"mrp"`
	Price     decimal.Decimal `json:"price"`
	GSTRate   decimal.Decimal `json:"gstRate"`
	GSTAmount decimal.Decimal `json:"gstAmount"`
	Total     decimal.Decimal `json:"total"`
}

// DocumentResponse holds the fields shared by sales and purchase responses
type DocumentResponse struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Products      []LineResponse  `json:"products"`
	SubTotal      decimal.Decimal `json:"subTotal"`
	TotalGST      decimal.Decimal `json:"totalGst"`
	RoundOff      decimal.Decimal `json:"roundOff"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	PaymentStatus string          `json:"paymentStatus"`
	Notes         string          `json:"notes,omitempty"`
	CaptureDate   time.Time       `json:"captureDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	shared.PaymentFields
}

func toDocumentResponse(d *trade.Document) DocumentResponse {
	lines := make([]LineResponse, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = LineResponse(l)
	}
	return DocumentResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Products:      lines,
		SubTotal:      d.Totals.SubTotal,
		TotalGST:      d.Totals.TotalGST,
		RoundOff:      d.Totals.RoundOff,
		Total:         d.Totals.Total,
		PaymentMethod: d.PaymentMethod,
		PaymentStatus: d.PaymentStatus,
		Notes:         d.Notes,
		CaptureDate:   d.CaptureDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		PaymentFields: d.PaymentDetail.Fields(),
	}
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	CustomerType  string    `json:"customerType"`
	CustomerID    uuid.UUID `json:"customerId"`
	DocumentResponse
}

// ToSalesOrderResponse converts a domain order to a response
func ToSalesOrderResponse(o *trade.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		InvoiceNumber:    o.InvoiceNumber,
		CustomerType:     o.CustomerType,
		CustomerID:       o.CustomerID,
		DocumentResponse: toDocumentResponse(&o.Document),
	}
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	BillNumber string    `json:"billNumber"`
	SupplierID uuid.UUID `json:"supplierId"`
	DocumentResponse
}

// ToPurchaseOrderResponse converts a domain purchase order to a response
func ToPurchaseOrderResponse(o *trade.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		BillNumber:       o.InvoiceNumber,
		SupplierID:       o.SupplierID,
		DocumentResponse: toDocumentResponse(&o.Document),
	}
}
