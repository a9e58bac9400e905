package printing

import (
	"bytes"
	"context"
	"time"
)

// Paper describes the output page in millimetres. Continuous paper grows
// with its content.
type Paper struct {
	Name       string
	WidthMM    float64
	HeightMM   float64
	Continuous bool
}

// Supported papers
var (
	PaperA4        = Paper{Name: "A4", WidthMM: 210, HeightMM: 297}
	PaperReceipt80 = Paper{Name: "RECEIPT_80", WidthMM: 80, HeightMM: 297, Continuous: true}
)

// IsValid returns true if the paper has positive dimensions
func (p Paper) IsValid() bool {
	return p.WidthMM > 0 && p.HeightMM > 0
}

// Margins in millimetres
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargins are used for full-page documents
func DefaultMargins() Margins {
	return Margins{Top: 12, Right: 10, Bottom: 12, Left: 10}
}

// RenderRequest contains the parameters for rendering HTML to PDF
type RenderRequest struct {
	HTML    string
	Title   string
	Paper   Paper
	Margins Margins
	// Timeout overrides the renderer default
	Timeout time.Duration
}

// RenderResult contains the output from PDF rendering
type RenderResult struct {
	PDFData        []byte
	PageCount      int
	RenderDuration time.Duration
}

// PDFRenderer turns HTML into a PDF document
type PDFRenderer interface {
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	Close() error
}

// RenderError represents an error during template execution or PDF rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout    = "RENDER_TIMEOUT"
	ErrCodeRenderFailed     = "RENDER_FAILED"
	ErrCodeInvalidHTML      = "INVALID_HTML"
	ErrCodeInvalidPaperSize = "INVALID_PAPER_SIZE"
	ErrCodeUnknownLayout    = "UNKNOWN_LAYOUT"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}

// estimatePageCount counts page objects in the PDF body
func estimatePageCount(pdf []byte) int {
	count := bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
	if count < 1 {
		return 1
	}
	return count
}
