package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// DocumentColumns holds the columns shared by sales and purchase orders
type DocumentColumns struct {
	TenantModel
	UserID        uuid.UUID       `gorm:"type:uuid;not null"`
	InvoiceNumber string          `gorm:"type:varchar(50);not null;index"`
	SubTotal      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalGST      decimal.Decimal `gorm:"column:total_gst;type:decimal(18,4);not null;default:0"`
	RoundOff      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentMethod string          `gorm:"type:varchar(30)"`
	PaymentDetailColumns
	PaymentStatus string    `gorm:"type:varchar(30);not null"`
	Notes         string    `gorm:"type:text"`
	CaptureDate   time.Time `gorm:"not null;index"`
	IsDeleted     bool      `gorm:"not null;default:false;index"`
}

func (c *DocumentColumns) fromDomain(d *trade.Document) {
	c.FromDomainTenantEntity(d.TenantEntity)
	c.UserID = d.UserID
	c.InvoiceNumber = d.InvoiceNumber
	c.SubTotal = d.Totals.SubTotal
	c.TotalGST = d.Totals.TotalGST
	c.RoundOff = d.Totals.RoundOff
	c.Total = d.Totals.Total
	c.PaymentMethod = d.PaymentMethod
	c.PaymentDetailColumns.FromDomain(d.PaymentDetail)
	c.PaymentStatus = d.PaymentStatus
	c.Notes = d.Notes
	c.CaptureDate = d.CaptureDate
	c.IsDeleted = d.IsDeleted
}

func (c *DocumentColumns) toDomain(lines []LineColumns) trade.Document {
	d := trade.Document{
		TenantEntity:  c.TenantEntity(),
		UserID:        c.UserID,
		InvoiceNumber: c.InvoiceNumber,
		Totals: trade.Totals{
			SubTotal: c.SubTotal,
			TotalGST: c.TotalGST,
			RoundOff: c.RoundOff,
			Total:    c.Total,
		},
		PaymentMethod: c.PaymentMethod,
		PaymentDetail: c.PaymentDetailColumns.ToDomain(),
		PaymentStatus: c.PaymentStatus,
		Notes:         c.Notes,
		CaptureDate:   c.CaptureDate,
		IsDeleted:     c.IsDeleted,
		Lines:         make([]trade.Line, len(lines)),
	}
	for i, l := range lines {
		d.Lines[i] = l.toDomain()
	}
	return d
}

// LineColumns holds the columns shared by sales and purchase order lines
type LineColumns struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	VariantID uuid.UUID       `gorm:"type:uuid;not null"`
	Unit      int64           `gorm:"not null"`
	Carton    int64           `gorm:"not null"`
	Quantity  int64           `gorm:"not null"`
	MRP       decimal.Decimal `gorm:"column:mrp;type:decimal(18,4);not null;default:0"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	GSTRate   decimal.Decimal `gorm:"column:gst_rate;type:decimal(5,2);not null;default:0"`
	GSTAmount decimal.Decimal `gorm:"column:gst_amount;type:decimal(18,4);not null;default:0"`
	Total     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

func newLineColumns(pos int, l trade.Line) LineColumns {
	return LineColumns{
		ID:        uuid.New(),
		Position:  pos,
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

func (l LineColumns) toDomain() trade.Line {
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

// SalesOrderModel is the persistence model for trade.SalesOrder
type SalesOrderModel struct {
	DocumentColumns
	CustomerType string                `gorm:"type:varchar(30);not null"`
	CustomerID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	Lines        []SalesOrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// SalesOrderLineModel is a row of sales_order_lines
type SalesOrderLineModel struct {
	LineColumns
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (SalesOrderLineModel) TableName() string {
	return "sales_order_lines"
}

// FromDomain populates the model, lines included, from a domain SalesOrder
func (m *SalesOrderModel) FromDomain(o *trade.SalesOrder) {
	m.DocumentColumns.fromDomain(&o.Document)
	m.CustomerType = o.CustomerType
	m.CustomerID = o.CustomerID
	m.Lines = make([]SalesOrderLineModel, len(o.Lines))
	for i, l := range o.Lines {
		m.Lines[i] = SalesOrderLineModel{LineColumns: newLineColumns(i, l), OrderID: o.ID}
	}
}

// ToDomain converts the model to a domain SalesOrder
func (m *SalesOrderModel) ToDomain() *trade.SalesOrder {
	lines := make([]LineColumns, len(m.Lines))
	for i, l := range m.Lines {
		lines[i] = l.LineColumns
	}
	return &trade.SalesOrder{
		Document:     m.DocumentColumns.toDomain(lines),
		CustomerType: m.CustomerType,
		CustomerID:   m.CustomerID,
	}
}

// PurchaseOrderModel is the persistence model for trade.PurchaseOrder
type PurchaseOrderModel struct {
	DocumentColumns
	SupplierID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Lines      []PurchaseOrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderLineModel is a row of purchase_order_lines
type PurchaseOrderLineModel struct {
	LineColumns
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (PurchaseOrderLineModel) TableName() string {
	return "purchase_order_lines"
}

// FromDomain populates the model, lines included, from a domain PurchaseOrder
func (m *PurchaseOrderModel) FromDomain(o *trade.PurchaseOrder) {
	m.DocumentColumns.fromDomain(&o.Document)
	m.SupplierID = o.SupplierID
	m.Lines = make([]PurchaseOrderLineModel, len(o.Lines))
	for i, l := range o.Lines {
		m.Lines[i] = PurchaseOrderLineModel{LineColumns: newLineColumns(i, l), OrderID: o.ID}
	}
}

// ToDomain converts the model to a domain PurchaseOrder
func (m *PurchaseOrderModel) ToDomain() *trade.PurchaseOrder {
	lines := make([]LineColumns, len(m.Lines))
	for i, l := range m.Lines {
		lines[i] = l.LineColumns
	}
	return &trade.PurchaseOrder{
		Document:   m.DocumentColumns.toDomain(lines),
		SupplierID: m.SupplierID,
	}
}
