package printing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopledger/backend/internal/domain/inventory"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/trade"
	infra "github.com/shopledger/backend/internal/infrastructure/printing"
	"github.com/shopledger/backend/internal/infrastructure/storage"
	"go.uber.org/zap"
)

const pdfContentType = "application/pdf"

// PartyNames resolves a customer id to a display name
type PartyNames interface {
	NameOf(ctx context.Context, tenantID, id uuid.UUID) string
}

// Templates renders document HTML
type Templates interface {
	Render(layout infra.Layout, data *infra.DocumentData) (string, error)
}

// ArchiveQueue schedules background archiving
type ArchiveQueue interface {
	EnqueueInvoiceArchive(ctx context.Context, req ArchiveRequest) error
}

// InvoiceService renders invoices and slips for sales orders
type InvoiceService struct {
	orders    trade.SalesOrderRepository
	variants  inventory.QuantityStore
	customers PartyNames
	templates Templates
	renderer  infra.PDFRenderer
	store     storage.ObjectStore
	queue     ArchiveQueue
	shopName  string
	logger    *zap.Logger
}

// InvoiceServiceOption configures optional collaborators
type InvoiceServiceOption func(*InvoiceService)

// WithArchive stores rendered documents in store, scheduling the work on
// queue when one is given and archiving inline otherwise.
func WithArchive(store storage.ObjectStore, queue ArchiveQueue) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.store = store
		s.queue = queue
	}
}

// WithShopName sets the heading printed on documents
func WithShopName(name string) InvoiceServiceOption {
	return func(s *InvoiceService) {
		if name != "" {
			s.shopName = name
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) InvoiceServiceOption {
	return func(s *InvoiceService) {
		s.logger = logger
	}
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	orders trade.SalesOrderRepository,
	variants inventory.QuantityStore,
	customers PartyNames,
	templates Templates,
	renderer infra.PDFRenderer,
	opts ...InvoiceServiceOption,
) *InvoiceService {
	s := &InvoiceService{
		orders:    orders,
		variants:  variants,
		customers: customers,
		templates: templates,
		renderer:  renderer,
		shopName:  "ShopLedger",
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render produces the PDF of a live sales order. When archiving is
// configured the document is also queued for storage; archive failures
// never fail the render.
func (s *InvoiceService) Render(ctx context.Context, tenantID, orderID uuid.UUID, kind DocumentKind) (*PDFDocument, error) {
	doc, err := s.render(ctx, tenantID, orderID, kind)
	if err != nil {
		return nil, err
	}
	if s.store != nil {
		s.scheduleArchive(ctx, ArchiveRequest{TenantID: tenantID, OrderID: orderID, Kind: kind}, doc)
	}
	return doc, nil
}

func (s *InvoiceService) scheduleArchive(ctx context.Context, req ArchiveRequest, doc *PDFDocument) {
	var err error
	if s.queue != nil {
		err = s.queue.EnqueueInvoiceArchive(ctx, req)
	} else {
		err = s.store.Upload(ctx, ArchiveKey(req.TenantID, req.OrderID, req.Kind), doc.Data, pdfContentType)
	}
	if err != nil {
		s.logger.Warn("Failed to archive document",
			zap.String("order_id", req.OrderID.String()),
			zap.String("kind", string(req.Kind)),
			zap.Error(err))
	}
}

// Archive renders a document and uploads it. It is the body of the
// background archive job and skips documents that are already stored.
func (s *InvoiceService) Archive(ctx context.Context, req ArchiveRequest) error {
	if s.store == nil {
		return fmt.Errorf("document archive is not configured")
	}
	key := ArchiveKey(req.TenantID, req.OrderID, req.Kind)
	exists, err := s.store.ObjectExists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	doc, err := s.render(ctx, req.TenantID, req.OrderID, req.Kind)
	if err != nil {
		return err
	}
	if err := s.store.Upload(ctx, key, doc.Data, pdfContentType); err != nil {
		return err
	}
	s.logger.Info("Document archived", zap.String("key", key), zap.Int("bytes", len(doc.Data)))
	return nil
}

func (s *InvoiceService) render(ctx context.Context, tenantID, orderID uuid.UUID, kind DocumentKind) (*PDFDocument, error) {
	if !kind.IsValid() {
		return nil, shared.NewValidationError("Unknown document kind: " + string(kind))
	}
	order, err := s.orders.FindByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsDeleted {
		return nil, shared.NewNotFoundError("Order")
	}

	html, err := s.templates.Render(kind.layout(), s.documentData(ctx, order, kind))
	if err != nil {
		return nil, fmt.Errorf("render %s template: %w", kind, err)
	}
	paper, margins := kind.paper()
	result, err := s.renderer.Render(ctx, &infra.RenderRequest{
		HTML:    html,
		Title:   order.InvoiceNumber,
		Paper:   paper,
		Margins: margins,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s pdf: %w", kind, err)
	}
	return &PDFDocument{
		Kind:          kind,
		OrderID:       order.ID,
		InvoiceNumber: order.InvoiceNumber,
		Data:          result.PDFData,
		PageCount:     result.PageCount,
	}, nil
}

func (s *InvoiceService) documentData(ctx context.Context, o *trade.SalesOrder, kind DocumentKind) *infra.DocumentData {
	title := "Tax Invoice"
	if kind == KindSlip {
		title = "Sales Slip"
	}
	customer := s.customers.NameOf(ctx, o.TenantID, o.CustomerID)
	if customer == "" {
		customer = "Walk-in Customer"
	}
	data := &infra.DocumentData{
		ShopName:      s.shopName,
		Title:         title,
		InvoiceNumber: o.InvoiceNumber,
		Date:          o.CaptureDate,
		CustomerName:  customer,
		CustomerType:  o.CustomerType,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		PaymentRef:    o.PaymentDetail.Reference(),
		SubTotal:      o.Totals.SubTotal,
		TotalGST:      o.Totals.TotalGST,
		RoundOff:      o.Totals.RoundOff,
		Total:         o.Totals.Total,
		Notes:         o.Notes,
	}
	data.Lines = make([]infra.LineData, len(o.Lines))
	for i, l := range o.Lines {
		data.Lines[i] = infra.LineData{
			No:        i + 1,
			Name:      s.lineName(ctx, o.TenantID, l),
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
	return data
}

func (s *InvoiceService) lineName(ctx context.Context, tenantID uuid.UUID, l trade.Line) string {
	snap, err := s.variants.GetVariant(ctx, tenantID, l.Ref())
	if err != nil {
		return "Unknown Product"
	}
	return snap.DisplayName()
}
