package printing

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templateFS embed.FS

// Layout names an embedded document template
type Layout string

const (
	LayoutInvoice Layout = "invoice.html"
	LayoutSlip    Layout = "slip.html"
)

// LineData is one printed order line
type LineData struct {
	No        int
	Name      string
	Unit      int64
	Carton    int64
	Quantity  int64
	MRP       decimal.Decimal
	Price     decimal.Decimal
	GSTRate   decimal.Decimal
	GSTAmount decimal.Decimal
	Total     decimal.Decimal
}

// DocumentData is bound to the invoice and slip templates
type DocumentData struct {
	ShopName      string
	Title         string
	InvoiceNumber string
	Date          time.Time
	CustomerName  string
	CustomerType  string
	PaymentMethod string
	PaymentStatus string
	PaymentRef    string
	Lines         []LineData
	SubTotal      decimal.Decimal
	TotalGST      decimal.Decimal
	RoundOff      decimal.Decimal
	Total         decimal.Decimal
	Notes         string
}

// TemplateEngine executes the embedded document templates with locale
// aware number, money and date formatting.
type TemplateEngine struct {
	tag       language.Tag
	unit      currency.Unit
	printer   *message.Printer
	templates *template.Template
}

// TemplateEngineOption configures the template engine
type TemplateEngineOption func(*TemplateEngine)

// WithLocale sets the BCP 47 locale used for numbers and title casing.
// Unknown tags fall back to English.
func WithLocale(locale string) TemplateEngineOption {
	return func(e *TemplateEngine) {
		if tag, err := language.Parse(locale); err == nil {
			e.tag = tag
		}
	}
}

// WithCurrency sets the ISO 4217 currency printed next to amounts
func WithCurrency(code string) TemplateEngineOption {
	return func(e *TemplateEngine) {
		if unit, err := currency.ParseISO(code); err == nil {
			e.unit = unit
		}
	}
}

// NewTemplateEngine parses the embedded templates
func NewTemplateEngine(opts ...TemplateEngineOption) (*TemplateEngine, error) {
	e := &TemplateEngine{tag: language.English, unit: currency.MustParseISO("INR")}
	for _, opt := range opts {
		opt(e)
	}
	e.printer = message.NewPrinter(e.tag)

	title := cases.Title(e.tag)
	funcs := template.FuncMap{
		"money":   e.formatMoney,
		"amount":  e.formatAmount,
		"percent": e.formatPercent,
		"int":     func(v int64) string { return e.printer.Sprint(number.Decimal(v)) },
		"date":    func(t time.Time) string { return t.Format("02 Jan 2006") },
		"title":   title.String,
		"upper":   strings.ToUpper,
	}
	tmpl, err := template.New("documents").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidHTML, "failed to parse document templates", err)
	}
	e.templates = tmpl
	return e, nil
}

// Render executes a layout against the document data
func (e *TemplateEngine) Render(layout Layout, data *DocumentData) (string, error) {
	t := e.templates.Lookup(string(layout))
	if t == nil {
		return "", NewRenderError(ErrCodeUnknownLayout, "unknown layout: "+string(layout), nil)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "failed to execute template", err)
	}
	return buf.String(), nil
}

// formatAmount prints a decimal with two fraction digits and locale grouping
func (e *TemplateEngine) formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return e.printer.Sprint(number.Decimal(f, number.Scale(2)))
}

// formatMoney prefixes the amount with the currency code, e.g. "INR 1,234.50"
func (e *TemplateEngine) formatMoney(d decimal.Decimal) string {
	return e.unit.String() + " " + e.formatAmount(d)
}

func (e *TemplateEngine) formatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
