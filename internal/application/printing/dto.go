package printing

import (
	"fmt"

	"github.com/google/uuid"
	infra "github.com/shopledger/backend/internal/infrastructure/printing"
)

// DocumentKind selects the printed form of a sales order
type DocumentKind string

const (
	KindInvoice DocumentKind = "invoice"
	KindSlip    DocumentKind = "slip"
)

// IsValid returns true if the kind is known
func (k DocumentKind) IsValid() bool {
	return k == KindInvoice || k == KindSlip
}

func (k DocumentKind) layout() infra.Layout {
	if k == KindSlip {
		return infra.LayoutSlip
	}
	return infra.LayoutInvoice
}

func (k DocumentKind) paper() (infra.Paper, infra.Margins) {
	if k == KindSlip {
		return infra.PaperReceipt80, infra.Margins{Top: 4, Right: 4, Bottom: 4, Left: 4}
	}
	return infra.PaperA4, infra.DefaultMargins()
}

// Filename is the name offered to the browser, "invoice.pdf" or "slip.pdf"
func (k DocumentKind) Filename() string {
	return string(k) + ".pdf"
}

// PDFDocument is a rendered sales document
type PDFDocument struct {
	Kind          DocumentKind
	OrderID       uuid.UUID
	InvoiceNumber string
	Data          []byte
	PageCount     int
}

// ArchiveKey is the object key of an archived document
func ArchiveKey(tenantID, orderID uuid.UUID, kind DocumentKind) string {
	return fmt.Sprintf("%s/orders/%s/%s", tenantID, orderID, kind.Filename())
}

// ArchiveRequest identifies a document to render and store in the background
type ArchiveRequest struct {
	TenantID uuid.UUID    `json:"tenant_id"`
	OrderID  uuid.UUID    `json:"order_id"`
	Kind     DocumentKind `json:"kind"`
}
