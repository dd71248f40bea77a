package invoicepdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Document kind constants.
const (
	KindInvoice  DocumentKind = "invoice"
	KindEstimate DocumentKind = "estimate"
)

// DocumentKind distinguishes invoices from estimates. It changes the footer
// wording and whether the due date is rendered; totals are computed the same
// way for both.
type DocumentKind string

// Validate checks that the kind is a known value.
// An empty kind is valid and treated as an invoice.
func (k DocumentKind) Validate() error {
	switch strings.ToLower(string(k)) {
	case "", string(KindInvoice), string(KindEstimate):
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidDocumentKind, k)
}

// IsEstimate reports whether the kind resolves to an estimate.
func (k DocumentKind) IsEstimate() bool {
	return strings.EqualFold(string(k), string(KindEstimate))
}

// Discount mode constants.
const (
	DiscountFixed   DiscountMode = "fixed"
	DiscountPercent DiscountMode = "percent"
)

// DiscountMode selects how a Discount value is interpreted: an absolute
// currency amount or a percentage (0-100) of the discounted base.
type DiscountMode string

// Discount is a value plus its interpretation mode. It is used both at the
// line-item level and at the document level.
type Discount struct {
	Value decimal.Decimal
	Mode  DiscountMode
}

// Validate checks that the discount mode is a known value.
// An empty mode is valid and treated as a fixed amount.
func (d Discount) Validate() error {
	switch strings.ToLower(string(d.Mode)) {
	case "", string(DiscountFixed), string(DiscountPercent):
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidDiscountMode, d.Mode)
}

// IsPercent reports whether the discount is percentage-based.
func (d Discount) IsPercent() bool {
	return strings.EqualFold(string(d.Mode), string(DiscountPercent))
}

// Currency identifies the document currency for formatting purposes only;
// no conversion ever happens here.
type Currency struct {
	Code   string // ISO code, e.g. "USD"
	Symbol string // display symbol, e.g. "$"
}

// Client is the billed party. Only Name gates rendering: a client without a
// name renders the placeholder path. The remaining fields are optional.
type Client struct {
	Name    string
	Address string
	Email   string
	Phone   string
	TaxID   string
	Fax     string
	Tags    []string
	Type    string
}

// LineItem is a single billable row.
//
// Discount is stored per item but is NOT part of LineTotal or the document
// subtotal unless ComputeOptions.ApplyItemDiscounts is set; see finance.go.
type LineItem struct {
	ID          string
	Name        string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Unit        string // unit label rendered next to the quantity, e.g. "hrs"
	Discount    Discount
	Taxable     bool
}

// Company is the sending party rendered in the FROM block. It is renderer
// configuration, not document data, because every document of an installation
// shares the same sender.
type Company struct {
	Name         string
	Street       string
	CityStateZip string
	Email        string
}

// FinancialDocument is the immutable value the library renders. It is fully
// resolved by the caller; the library never mutates or persists it.
type FinancialDocument struct {
	ID       string
	Kind     DocumentKind
	Title    string
	Client   *Client
	Items    []LineItem
	TaxRate  decimal.Decimal // percent, 0-100; out-of-range values are clamped
	Discount Discount        // document-level discount
	Currency Currency
	Status   string

	// IssueDate is rendered for both kinds; DueDate for invoices only.
	// Zero dates render as empty values.
	IssueDate time.Time
	DueDate   time.Time
}

// Validate checks the enumerated fields of the document and its items.
// Numeric fields are never rejected: out-of-range rates and negative
// discounts are clamped during computation instead.
func (d FinancialDocument) Validate() error {
	if err := d.Kind.Validate(); err != nil {
		return err
	}
	if err := d.Discount.Validate(); err != nil {
		return err
	}
	for i, it := range d.Items {
		if err := it.Discount.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// DisplayTitle returns the document title, falling back to the kind name
// when the title is empty.
func (d FinancialDocument) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	if d.Kind.IsEstimate() {
		return "Estimate"
	}
	return "Invoice"
}

// ShortID returns the display identifier: the first 8 characters of the
// document id, uppercased. Shorter ids are used as-is.
func (d FinancialDocument) ShortID() string {
	runes := []rune(d.ID)
	if len(runes) > 8 {
		runes = runes[:8]
	}
	return strings.ToUpper(string(runes))
}
