package invoicepdf

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ComputeOptions control the parts of the totals computation that are
// feature-flagged rather than settled.
type ComputeOptions struct {
	// ApplyItemDiscounts subtracts each item's own discount from its line
	// total before it enters the subtotal. The historical behavior stores
	// item discounts without applying them, so this defaults to off pending
	// product clarification.
	ApplyItemDiscounts bool
}

// Totals holds every derived amount for a document, computed in one pass.
type Totals struct {
	Subtotal        decimal.Decimal
	TaxableSubtotal decimal.Decimal
	TaxTotal        decimal.Decimal
	DiscountValue   decimal.Decimal
	GrandTotal      decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// LineTotal returns quantity x unit price for an item. The item's own
// discount fields are ignored; see ComputeOptions.ApplyItemDiscounts.
func LineTotal(it LineItem) decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice)
}

// lineTotal applies the compute options to a single item, flooring at zero
// when item discounts are enabled.
func lineTotal(it LineItem, opts ComputeOptions) decimal.Decimal {
	total := LineTotal(it)
	if !opts.ApplyItemDiscounts {
		return total
	}
	var off decimal.Decimal
	if it.Discount.IsPercent() {
		off = clampRate(it.Discount.Value).Div(oneHundred).Mul(total)
	} else {
		off = it.Discount.Value
	}
	if off.IsNegative() {
		off = decimal.Zero
	}
	total = total.Sub(off)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Subtotal returns the sum of all line totals.
func Subtotal(doc FinancialDocument) decimal.Decimal {
	return subtotal(doc, ComputeOptions{})
}

func subtotal(doc FinancialDocument, opts ComputeOptions) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range doc.Items {
		sum = sum.Add(lineTotal(it, opts))
	}
	return sum
}

// TaxableSubtotal returns the sum of line totals for items flagged taxable.
// Non-taxable items never contribute to the tax base.
func TaxableSubtotal(doc FinancialDocument) decimal.Decimal {
	return taxableSubtotal(doc, ComputeOptions{})
}

func taxableSubtotal(doc FinancialDocument, opts ComputeOptions) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range doc.Items {
		if it.Taxable {
			sum = sum.Add(lineTotal(it, opts))
		}
	}
	return sum
}

// TaxTotal returns the tax amount: taxable subtotal x (rate / 100).
// Rates outside 0-100 are clamped, never rejected.
func TaxTotal(doc FinancialDocument) decimal.Decimal {
	return taxTotal(doc, ComputeOptions{})
}

func taxTotal(doc FinancialDocument, opts ComputeOptions) decimal.Decimal {
	return taxableSubtotal(doc, opts).Mul(clampRate(doc.TaxRate)).Div(oneHundred)
}

// DiscountValue returns the document-level discount amount.
// Fixed discounts are capped at subtotal + tax so the total cannot go
// negative through the discount alone; percentage discounts are a fraction
// of subtotal + tax. Negative discounts count as zero.
func DiscountValue(doc FinancialDocument) decimal.Decimal {
	return discountValue(doc, ComputeOptions{})
}

func discountValue(doc FinancialDocument, opts ComputeOptions) decimal.Decimal {
	base := subtotal(doc, opts).Add(taxTotal(doc, opts))
	if doc.Discount.IsPercent() {
		return clampRate(doc.Discount.Value).Div(oneHundred).Mul(base)
	}
	v := doc.Discount.Value
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(base) {
		return base
	}
	return v
}

// GrandTotal returns subtotal + tax - discount, floored at zero.
func GrandTotal(doc FinancialDocument) decimal.Decimal {
	return ComputeTotals(doc, ComputeOptions{}).GrandTotal
}

// ComputeTotals derives every total for the document in one pass.
// It is a pure function: safe to call repeatedly and concurrently.
func ComputeTotals(doc FinancialDocument, opts ComputeOptions) Totals {
	t := Totals{
		Subtotal:        subtotal(doc, opts),
		TaxableSubtotal: taxableSubtotal(doc, opts),
	}
	t.TaxTotal = t.TaxableSubtotal.Mul(clampRate(doc.TaxRate)).Div(oneHundred)

	base := t.Subtotal.Add(t.TaxTotal)
	if doc.Discount.IsPercent() {
		t.DiscountValue = clampRate(doc.Discount.Value).Div(oneHundred).Mul(base)
	} else {
		switch v := doc.Discount.Value; {
		case v.IsNegative():
			t.DiscountValue = decimal.Zero
		case v.GreaterThan(base):
			t.DiscountValue = base
		default:
			t.DiscountValue = v
		}
	}

	t.GrandTotal = base.Sub(t.DiscountValue)
	if t.GrandTotal.IsNegative() {
		t.GrandTotal = decimal.Zero
	}
	return t
}

// clampRate bounds a percentage rate to the 0-100 range.
func clampRate(r decimal.Decimal) decimal.Decimal {
	if r.IsNegative() {
		return decimal.Zero
	}
	if r.GreaterThan(oneHundred) {
		return oneHundred
	}
	return r
}

// ParseAmount decodes a stored decimal string defensively: malformed input
// yields zero rather than an error, matching how upstream data with
// unparseable totals is treated.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
