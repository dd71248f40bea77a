// Package invoicepdf renders invoices and estimates into styled, paginated
// PDF bytes and computes their monetary totals.
//
// # Quick Start
//
// Create a renderer, render a document, and use the returned bytes:
//
//	r := invoicepdf.NewRenderer(
//	    invoicepdf.WithCompany(invoicepdf.Company{Name: "Acme LLC"}),
//	)
//	pdf, err := r.Render(ctx, doc, invoicepdf.StyleModern)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("invoice.pdf", pdf, 0644)
//
// # Rendering Pipeline
//
// Rendering runs six layout phases in fixed order against an abstract
// canvas:
//
//  1. Header (style-dependent shape, title and short id)
//  2. Sender block (FROM column plus dates/status/currency pairs)
//  3. Recipient block (BILL TO, placeholder when no client is set)
//  4. Line-item table (measured row heights, page breaks)
//  5. Summary block (subtotal, tax, discount, highlighted total)
//  6. Footer (thank-you line pinned to the first page)
//
// Totals are pure functions of the document (see ComputeTotals); changing
// the template style never changes an amount, only the visuals. Identical
// inputs produce identical bytes.
//
// # Templates
//
// Seven styles render the same content: Modern, Classic, Minimal, Vibrant,
// TealAccent, GoldTheme and Boxed. Each is an immutable bundle of accent
// color, secondary tone, font family choice and header shape, resolved
// through LookupStyle.
//
// # Concurrency
//
// A Renderer is safe for concurrent Render calls: each call creates its own
// canvas and shares only read-only configuration. Rendering one document is
// synchronous and does no I/O.
package invoicepdf
