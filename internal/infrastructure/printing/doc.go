// Package printing renders sales documents to PDF.
//
// Documents are produced in two steps: the TemplateEngine executes an
// embedded html/template against a DocumentData value, then a PDFRenderer
// turns the HTML into PDF bytes. ChromedpRenderer drives a headless Chrome
// over the DevTools protocol and is the only renderer shipped.
//
//	engine := NewTemplateEngine(WithLocale("en-IN"))
//	html, err := engine.Render(LayoutInvoice, data)
//	result, err := renderer.Render(ctx, &RenderRequest{HTML: html, Paper: PaperA4})
package printing
