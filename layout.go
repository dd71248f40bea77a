package invoicepdf

import (
	"fmt"
	"math"
	"strings"

	"github.com/avelar/go-invoicepdf/internal/dateutil"
)

// Layout geometry in points. The page is a single fixed size; everything
// else derives from it.
const (
	marginLeft   = 40.0
	marginTop    = 40.0
	marginBottom = 40.0
	contentWidth = pageWidth - 2*marginLeft

	// Vertical gaps between phases, in phase order.
	gapAfterHeader    = 15.0
	gapAfterSender    = 25.0
	gapAfterRecipient = 25.0
	gapAfterTable     = 20.0

	sidebarWidth  = 18.0 // Modern header accent sidebar
	baseRowHeight = 18.0 // minimum table row height before padding
	rowPadding    = 6.0
	cellPadding   = 4.0
	labelRowH     = 16.0 // label/value pair row advance
	summaryRowH   = 16.0
	totalBandH    = 24.0

	// footerOffset is measured from the bottom edge of the first page. The
	// footer stays there even when the item table overflows onto later
	// pages, so it can collide with table rows on page one. Intentionally
	// preserved; see the regression test before changing.
	footerOffset = 50.0
)

// summaryWidthFrac is the summary box width as a fraction of content width.
const summaryWidthFrac = 0.40

// Table columns: description, quantity, unit price, amount.
var (
	tableColumnFracs  = [4]float64{0.40, 0.15, 0.20, 0.25}
	tableColumnTitles = [4]string{"Description", "Qty", "Unit Price", "Amount"}
)

// recipientPlaceholder renders when the document has no named client.
const recipientPlaceholder = "No client selected"

// layoutEngine turns one document into draw commands against a Canvas.
// Each phase takes the current vertical cursor and returns the next one.
// The engine holds no cross-render state; a fresh one is built per render.
type layoutEngine struct {
	canvas  Canvas
	doc     FinancialDocument
	style   StyleConfig
	totals  Totals
	company Company
	opts    ComputeOptions
	money   *currencyFormatter
}

func newLayoutEngine(canvas Canvas, doc FinancialDocument, style TemplateStyle, company Company, opts ComputeOptions) *layoutEngine {
	return &layoutEngine{
		canvas:  canvas,
		doc:     doc,
		style:   LookupStyle(style),
		totals:  ComputeTotals(doc, opts),
		company: company,
		opts:    opts,
		money:   newCurrencyFormatter(doc.Currency),
	}
}

// drawHeader renders the style-dependent header shape. Every shape draws the
// uppercased title and the "#"-prefixed short id.
func (e *layoutEngine) drawHeader(y float64) float64 {
	title := strings.ToUpper(e.doc.DisplayTitle())
	id := "#" + e.doc.ShortID()
	titleFont := e.style.Font(24, true)
	idFont := e.style.Font(10, false)

	switch e.style.Shape {
	case HeaderSidebar:
		e.canvas.FillRect(Rect{0, 0, sidebarWidth, pageHeight}, e.style.Accent)
		e.canvas.DrawTextRotated(title, Point{sidebarWidth - 5, pageHeight - marginTop}, 90, e.style.Font(20, true), colorWhite)
		e.canvas.DrawText(id, Rect{marginLeft, y, contentWidth, 14}, idFont, colorGray, AlignRight, false)
		return y + 30

	case HeaderCenterRule:
		e.canvas.DrawText(title, Rect{marginLeft, y, contentWidth, 28}, titleFont, e.style.Accent, AlignCenter, false)
		e.canvas.StrokeLine(Point{marginLeft, y + 34}, Point{marginLeft + contentWidth, y + 34}, e.style.Accent, 1)
		e.canvas.DrawText(id, Rect{marginLeft, y + 40, contentWidth, 12}, idFont, colorGray, AlignCenter, false)
		return y + 56

	case HeaderBanner:
		// Diagonal banner approximated by receding strips; the painter has
		// no polygon primitive.
		e.canvas.FillRect(Rect{0, 0, pageWidth, 56}, e.style.Accent)
		e.canvas.FillRect(Rect{0, 56, pageWidth * 0.66, 10}, e.style.Accent)
		e.canvas.FillRect(Rect{0, 66, pageWidth * 0.33, 10}, e.style.Secondary)
		e.canvas.DrawText(title, Rect{marginLeft, 14, contentWidth, 28}, titleFont, colorWhite, AlignLeft, false)
		e.canvas.DrawText(id, Rect{marginLeft, 14, contentWidth, 28}, idFont, colorWhite, AlignRight, false)
		return 92

	case HeaderBox:
		e.canvas.FillRect(Rect{marginLeft, y, contentWidth, 46}, e.style.Secondary)
		e.strokeRect(Rect{marginLeft, y, contentWidth, 46}, e.style.Accent, 1.5)
		e.canvas.DrawText(title, Rect{marginLeft + cellPadding, y + 9, contentWidth - 2*cellPadding, 28}, titleFont, e.style.Accent, AlignLeft, false)
		e.canvas.DrawText(id, Rect{marginLeft + cellPadding, y + 9, contentWidth - 2*cellPadding, 28}, idFont, colorGray, AlignRight, false)
		return y + 56

	case HeaderUnderline:
		e.canvas.DrawText(title, Rect{marginLeft, y, contentWidth, 26}, titleFont, colorBlack, AlignLeft, false)
		e.canvas.StrokeLine(Point{marginLeft, y + 30}, Point{marginLeft + 60, y + 30}, e.style.Accent, 2)
		e.canvas.DrawText(id, Rect{marginLeft, y + 36, contentWidth, 12}, idFont, colorGray, AlignLeft, false)
		return y + 50

	default: // HeaderFullRule
		e.canvas.DrawText(title, Rect{marginLeft, y, contentWidth, 26}, titleFont, e.style.Accent, AlignLeft, false)
		e.canvas.DrawText(id, Rect{marginLeft, y, contentWidth, 26}, idFont, colorGray, AlignRight, false)
		e.canvas.StrokeLine(Point{marginLeft, y + 32}, Point{marginLeft + contentWidth, y + 32}, e.style.Accent, 1.5)
		return y + 44
	}
}

// drawSender renders the FROM block on the left and the document metadata
// (dates, status, currency) as label/value pairs on the right.
func (e *layoutEngine) drawSender(y float64) float64 {
	labelFont := e.style.Font(9, true)
	bodyFont := e.style.Font(10, false)
	colW := contentWidth / 2

	e.canvas.DrawText("FROM:", Rect{marginLeft, y, colW, 12}, labelFont, e.style.Accent, AlignLeft, false)
	leftY := y + labelRowH
	for _, line := range []string{e.company.Name, e.company.Street, e.company.CityStateZip, e.company.Email} {
		if line == "" {
			continue
		}
		h := math.Max(lineHeight(bodyFont), e.canvas.MeasureText(line, colW, bodyFont).H)
		e.canvas.DrawText(line, Rect{marginLeft, leftY, colW, 0}, bodyFont, colorBlack, AlignLeft, true)
		leftY += h
	}

	rightX := marginLeft + contentWidth*0.55
	rightW := contentWidth * 0.45
	rightY := y
	for _, pair := range e.metadataPairs() {
		e.canvas.DrawText(pair[0], Rect{rightX, rightY, rightW, 12}, labelFont, colorGray, AlignLeft, false)
		e.canvas.DrawText(pair[1], Rect{rightX, rightY, rightW, 12}, bodyFont, colorBlack, AlignRight, false)
		rightY += labelRowH
	}

	return math.Max(leftY, rightY)
}

// metadataPairs builds the right-hand label/value column. The due date only
// applies to invoices.
func (e *layoutEngine) metadataPairs() [][2]string {
	pairs := [][2]string{
		{"Issue Date:", dateutil.Medium(e.doc.IssueDate)},
	}
	if !e.doc.Kind.IsEstimate() {
		pairs = append(pairs, [2]string{"Due Date:", dateutil.Medium(e.doc.DueDate)})
	}
	pairs = append(pairs,
		[2]string{"Status:", e.doc.Status},
		[2]string{"Currency:", e.doc.Currency.Code},
	)
	return pairs
}

// drawRecipient renders the BILL TO block, or the placeholder when no client
// name is set. A missing recipient is not an error.
func (e *layoutEngine) drawRecipient(y float64) float64 {
	labelFont := e.style.Font(9, true)
	bodyFont := e.style.Font(10, false)
	colW := contentWidth / 2

	e.canvas.DrawText("BILL TO:", Rect{marginLeft, y, colW, 12}, labelFont, e.style.Accent, AlignLeft, false)
	y += labelRowH

	if e.doc.Client == nil || strings.TrimSpace(e.doc.Client.Name) == "" {
		e.canvas.DrawText(recipientPlaceholder, Rect{marginLeft, y, colW, 12}, bodyFont, colorGray, AlignLeft, false)
		return y + labelRowH
	}

	client := e.doc.Client
	nameFont := e.style.Font(11, true)
	h := math.Max(lineHeight(nameFont), e.canvas.MeasureText(client.Name, colW, nameFont).H)
	e.canvas.DrawText(client.Name, Rect{marginLeft, y, colW, 0}, nameFont, colorBlack, AlignLeft, true)
	y += h

	for _, line := range []string{client.Address, client.Email, client.Phone} {
		if line == "" {
			continue
		}
		h := math.Max(lineHeight(bodyFont), e.canvas.MeasureText(line, colW, bodyFont).H)
		e.canvas.DrawText(line, Rect{marginLeft, y, colW, 0}, bodyFont, colorBlack, AlignLeft, true)
		y += h
	}

	if e.style.ClosingRule {
		y += 6
		e.canvas.StrokeLine(Point{marginLeft, y}, Point{marginLeft + contentWidth, y}, e.style.Secondary, 1)
		y += 4
	}
	return y
}

// drawItemTable renders the four-column line-item table with measured row
// heights and page breaks. The column header row is painted once and not
// repeated after a break.
func (e *layoutEngine) drawItemTable(y float64) float64 {
	headFont := e.style.Font(9, true)
	rowFont := e.style.Font(9, false)
	const headerH = 22.0

	x := marginLeft
	e.canvas.FillRect(Rect{marginLeft, y, contentWidth, headerH}, e.style.Accent)
	for i, title := range tableColumnTitles {
		w := tableColumnFracs[i] * contentWidth
		e.canvas.DrawText(strings.ToUpper(title), Rect{x + cellPadding, y, w - 2*cellPadding, headerH}, headFont, colorWhite, columnAlign(i), false)
		x += w
	}
	y += headerH

	descW := tableColumnFracs[0]*contentWidth - 2*cellPadding
	for i, it := range e.doc.Items {
		desc := it.Name
		if it.Description != "" {
			desc += "\n" + it.Description
		}
		rowH := math.Max(baseRowHeight, e.canvas.MeasureText(desc, descW, rowFont).H) + rowPadding

		if y+rowH > pageHeight-marginBottom {
			e.canvas.BeginNewPage()
			y = marginTop
		}

		if i%2 == 1 {
			e.canvas.FillRect(Rect{marginLeft, y, contentWidth, rowH}, e.style.Stripe)
		}

		x := marginLeft
		e.canvas.DrawText(desc, Rect{x + cellPadding, y + rowPadding/2, descW, 0}, rowFont, colorBlack, AlignLeft, true)
		x += tableColumnFracs[0] * contentWidth

		qty := it.Quantity.String()
		if it.Unit != "" {
			qty += " " + it.Unit
		}
		cells := [3]string{
			qty,
			e.money.Format(it.UnitPrice),
			e.money.Format(lineTotal(it, e.opts)),
		}
		for j, cell := range cells {
			w := tableColumnFracs[j+1] * contentWidth
			e.canvas.DrawText(cell, Rect{x + cellPadding, y, w - 2*cellPadding, rowH}, rowFont, colorBlack, columnAlign(j+1), false)
			x += w
		}
		y += rowH
	}
	return y
}

// columnAlign returns the table alignment rule: first two columns left,
// money columns right.
func columnAlign(col int) Alignment {
	if col < 2 {
		return AlignLeft
	}
	return AlignRight
}

// drawSummary renders the right-aligned totals box: subtotal, tax, discount
// and the highlighted grand total.
func (e *layoutEngine) drawSummary(y float64) float64 {
	boxW := contentWidth * summaryWidthFrac
	boxX := marginLeft + contentWidth - boxW
	labelW := boxW * 0.55
	bodyFont := e.style.Font(10, false)

	rows := [][2]string{
		{"Subtotal:", e.money.Format(e.totals.Subtotal)},
		{fmt.Sprintf("Tax (%s%%):", formatRate(clampRate(e.doc.TaxRate))), e.money.Format(e.totals.TaxTotal)},
		{e.discountLabel(), "-" + e.money.Format(e.totals.DiscountValue)},
	}
	for _, row := range rows {
		e.canvas.DrawText(row[0], Rect{boxX, y, labelW, 12}, bodyFont, colorBlack, AlignLeft, false)
		e.canvas.DrawText(row[1], Rect{boxX + labelW, y, boxW - labelW, 12}, bodyFont, colorBlack, AlignRight, false)
		y += summaryRowH
	}

	y += 4
	totalFont := e.style.Font(13, true)
	e.canvas.FillRect(Rect{boxX, y, boxW, totalBandH}, e.style.Secondary)
	e.canvas.DrawText("Total:", Rect{boxX + cellPadding, y, labelW, totalBandH}, totalFont, e.style.Accent, AlignLeft, false)
	e.canvas.DrawText(e.money.Format(e.totals.GrandTotal), Rect{boxX + labelW, y, boxW - labelW - cellPadding, totalBandH}, totalFont, e.style.Accent, AlignRight, false)
	return y + totalBandH
}

// discountLabel names the discount row by mode: rate for percentages,
// currency symbol for fixed amounts.
func (e *layoutEngine) discountLabel() string {
	if e.doc.Discount.IsPercent() {
		return fmt.Sprintf("Discount (%s%%):", formatRate(clampRate(e.doc.Discount.Value)))
	}
	symbol := e.doc.Currency.Symbol
	if symbol == "" {
		symbol = e.doc.Currency.Code
	}
	return fmt.Sprintf("Discount (%s):", symbol)
}

// drawFooter renders the thank-you line at its fixed offset from the bottom
// of the first page, navigating back when the table overflowed.
func (e *layoutEngine) drawFooter() {
	msg := "Thank you for your business!"
	if e.doc.Kind.IsEstimate() {
		msg = "Thank you for considering our estimate!"
	}
	font := e.style.Font(10, false)
	rect := Rect{marginLeft, pageHeight - footerOffset, contentWidth, 14}

	if nav, ok := e.canvas.(PageNavigator); ok && nav.PageCount() > 1 {
		last := nav.PageCount()
		nav.SetPage(1)
		e.canvas.DrawText(msg, rect, font, colorGray, AlignCenter, false)
		nav.SetPage(last)
		return
	}
	e.canvas.DrawText(msg, rect, font, colorGray, AlignCenter, false)
}

// strokeRect outlines a rectangle with four lines; the painter has no
// stroked-rect primitive.
func (e *layoutEngine) strokeRect(r Rect, c Color, width float64) {
	e.canvas.StrokeLine(Point{r.X, r.Y}, Point{r.X + r.W, r.Y}, c, width)
	e.canvas.StrokeLine(Point{r.X + r.W, r.Y}, Point{r.X + r.W, r.Y + r.H}, c, width)
	e.canvas.StrokeLine(Point{r.X + r.W, r.Y + r.H}, Point{r.X, r.Y + r.H}, c, width)
	e.canvas.StrokeLine(Point{r.X, r.Y + r.H}, Point{r.X, r.Y}, c, width)
}
