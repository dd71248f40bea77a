package invoicepdf

// Notes:
// - recordingCanvas: deterministic Canvas fake shared by layout and renderer
//   tests; measurement uses a fixed glyph width so row heights are stable
// - header: each style's shape produces its characteristic primitives
// - recipient: missing/empty client name takes the placeholder path
// - table: pagination breaks pages without repeating the header row,
//   odd rows are striped, no item is dropped or duplicated
// - summary: labels depend on discount mode
// - footer: pinned to page one even when the table overflows

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// recordingCanvas - Canvas fake
// ---------------------------------------------------------------------------

type recordedOp struct {
	kind  string // "text", "rtext", "fill", "line", "page"
	text  string
	rect  Rect
	font  Font
	color Color
	align Alignment
	wrap  bool
	page  int
}

// recordingCanvas records draw commands and fakes measurement with a fixed
// glyph width of half the font size.
type recordingCanvas struct {
	ops         []recordedOp
	page        int
	pages       int
	finalized   bool
	finalizeErr error
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{page: 1, pages: 1}
}

func (c *recordingCanvas) DrawText(text string, rect Rect, font Font, color Color, align Alignment, wrap bool) {
	c.ops = append(c.ops, recordedOp{kind: "text", text: text, rect: rect, font: font, color: color, align: align, wrap: wrap, page: c.page})
}

func (c *recordingCanvas) DrawTextRotated(text string, at Point, angle float64, font Font, color Color) {
	c.ops = append(c.ops, recordedOp{kind: "rtext", text: text, rect: Rect{X: at.X, Y: at.Y}, font: font, color: color, page: c.page})
}

func (c *recordingCanvas) MeasureText(text string, width float64, font Font) Size {
	glyph := font.Size * 0.5
	perLine := int(width / glyph)
	if perLine < 1 {
		perLine = 1
	}
	lines := 0
	for _, seg := range strings.Split(text, "\n") {
		n := (len(seg) + perLine - 1) / perLine
		if n == 0 {
			n = 1
		}
		lines += n
	}
	return Size{W: width, H: float64(lines) * font.Size * lineSpacing}
}

func (c *recordingCanvas) FillRect(rect Rect, color Color) {
	c.ops = append(c.ops, recordedOp{kind: "fill", rect: rect, color: color, page: c.page})
}

func (c *recordingCanvas) StrokeLine(from, to Point, color Color, width float64) {
	c.ops = append(c.ops, recordedOp{kind: "line", rect: Rect{X: from.X, Y: from.Y, W: to.X - from.X, H: to.Y - from.Y}, color: color, page: c.page})
}

func (c *recordingCanvas) BeginNewPage() {
	c.pages++
	c.page = c.pages
	c.ops = append(c.ops, recordedOp{kind: "page", page: c.page})
}

func (c *recordingCanvas) Finalize() ([]byte, error) {
	c.finalized = true
	if c.finalizeErr != nil {
		return nil, c.finalizeErr
	}
	return []byte("%PDF-fake"), nil
}

func (c *recordingCanvas) PageCount() int { return c.pages }

func (c *recordingCanvas) SetPage(n int) { c.page = n }

// textOps returns all recorded text ops whose content contains substr.
func (c *recordingCanvas) textOps(substr string) []recordedOp {
	var out []recordedOp
	for _, op := range c.ops {
		if (op.kind == "text" || op.kind == "rtext") && strings.Contains(op.text, substr) {
			out = append(out, op)
		}
	}
	return out
}

func (c *recordingCanvas) countKind(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// test fixtures
// ---------------------------------------------------------------------------

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testDocument() FinancialDocument {
	return FinancialDocument{
		ID:    "b8f1c2d3-4e5f-6071-8293-a4b5c6d7e8f9",
		Kind:  KindInvoice,
		Title: "Invoice",
		Client: &Client{
			Name:    "Globex Corporation",
			Address: "12 Industry Way, Springfield",
			Email:   "ap@globex.example",
		},
		Items: []LineItem{
			{Name: "Design work", Quantity: dec("2"), UnitPrice: dec("10"), Unit: "hrs", Taxable: true},
			{Name: "Hosting", Quantity: dec("1"), UnitPrice: dec("5"), Unit: "mo", Taxable: true},
		},
		TaxRate:  dec("10"),
		Discount: Discount{Value: dec("5"), Mode: DiscountFixed},
		Currency: Currency{Code: "USD", Symbol: "$"},
		Status:   "Draft",
	}
}

func manyItemsDocument(n int) FinancialDocument {
	doc := testDocument()
	doc.Items = nil
	for i := 0; i < n; i++ {
		doc.Items = append(doc.Items, LineItem{
			Name:      "Item " + string(rune('A'+i%26)) + "-" + strings.Repeat("x", 1+i%3),
			Quantity:  dec("1"),
			UnitPrice: dec("10"),
			Taxable:   true,
		})
	}
	return doc
}

func newTestEngine(canvas Canvas, doc FinancialDocument, style TemplateStyle) *layoutEngine {
	return newLayoutEngine(canvas, doc, style, Company{
		Name:         "Acme LLC",
		Street:       "1 Main St",
		CityStateZip: "Metropolis, NY 10001",
		Email:        "billing@acme.example",
	}, ComputeOptions{})
}

// ---------------------------------------------------------------------------
// TestDrawHeader_Shapes - per-style header primitives
// ---------------------------------------------------------------------------

func TestDrawHeader_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style TemplateStyle
		check func(t *testing.T, rc *recordingCanvas)
	}{
		{
			name:  "modern draws full-height sidebar and rotated title",
			style: StyleModern,
			check: func(t *testing.T, rc *recordingCanvas) {
				found := false
				for _, op := range rc.ops {
					if op.kind == "fill" && op.rect.X == 0 && op.rect.W == sidebarWidth && op.rect.H == pageHeight {
						found = true
					}
				}
				if !found {
					t.Error("expected full-height sidebar fill")
				}
				if len(rc.textOps("INVOICE")) == 0 {
					t.Error("expected rotated uppercased title")
				}
			},
		},
		{
			name:  "classic draws centered title and full rule",
			style: StyleClassic,
			check: func(t *testing.T, rc *recordingCanvas) {
				ops := rc.textOps("INVOICE")
				if len(ops) != 1 || ops[0].align != AlignCenter {
					t.Errorf("expected one centered title, got %+v", ops)
				}
				if rc.countKind("line") == 0 {
					t.Error("expected a horizontal rule")
				}
			},
		},
		{
			name:  "vibrant draws banner strips",
			style: StyleVibrant,
			check: func(t *testing.T, rc *recordingCanvas) {
				if got := rc.countKind("fill"); got < 3 {
					t.Errorf("expected at least 3 banner fills, got %d", got)
				}
			},
		},
		{
			name:  "boxed draws filled box with border lines",
			style: StyleBoxed,
			check: func(t *testing.T, rc *recordingCanvas) {
				if rc.countKind("fill") == 0 {
					t.Error("expected filled title box")
				}
				if got := rc.countKind("line"); got != 4 {
					t.Errorf("expected 4 border lines, got %d", got)
				}
			},
		},
		{
			name:  "minimal draws short underline",
			style: StyleMinimal,
			check: func(t *testing.T, rc *recordingCanvas) {
				found := false
				for _, op := range rc.ops {
					if op.kind == "line" && op.rect.W == 60 {
						found = true
					}
				}
				if !found {
					t.Error("expected a 60pt underline")
				}
			},
		},
		{
			name:  "teal accent draws full-width rule",
			style: StyleTealAccent,
			check: func(t *testing.T, rc *recordingCanvas) {
				found := false
				for _, op := range rc.ops {
					if op.kind == "line" && op.rect.W == contentWidth {
						found = true
					}
				}
				if !found {
					t.Error("expected a full-width rule")
				}
			},
		},
		{
			name:  "gold theme draws full-width rule",
			style: StyleGoldTheme,
			check: func(t *testing.T, rc *recordingCanvas) {
				found := false
				for _, op := range rc.ops {
					if op.kind == "line" && op.rect.W == contentWidth {
						found = true
					}
				}
				if !found {
					t.Error("expected a full-width rule")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc := newRecordingCanvas()
			eng := newTestEngine(rc, testDocument(), tt.style)

			next := eng.drawHeader(marginTop)
			if next <= marginTop {
				t.Errorf("cursor did not advance: %v", next)
			}
			if len(rc.textOps("#B8F1C2D3")) == 0 {
				t.Error("expected shortened uppercased document id")
			}
			tt.check(t, rc)
		})
	}
}

// ---------------------------------------------------------------------------
// TestDrawSender - FROM block and metadata pairs
// ---------------------------------------------------------------------------

func TestDrawSender(t *testing.T) {
	t.Parallel()

	t.Run("invoice renders due date pair", func(t *testing.T) {
		t.Parallel()

		rc := newRecordingCanvas()
		eng := newTestEngine(rc, testDocument(), StyleModern)

		next := eng.drawSender(100)
		if next <= 100 {
			t.Errorf("cursor did not advance: %v", next)
		}
		for _, want := range []string{"FROM:", "Acme LLC", "Issue Date:", "Due Date:", "Status:", "Currency:"} {
			if len(rc.textOps(want)) == 0 {
				t.Errorf("missing %q", want)
			}
		}
	})

	t.Run("estimate omits due date pair", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.Kind = KindEstimate
		rc := newRecordingCanvas()
		eng := newTestEngine(rc, doc, StyleModern)

		eng.drawSender(100)
		if len(rc.textOps("Due Date:")) != 0 {
			t.Error("estimate must not render a due date")
		}
	})
}

// ---------------------------------------------------------------------------
// TestDrawRecipient - BILL TO block and placeholder path
// ---------------------------------------------------------------------------

func TestDrawRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		client          *Client
		wantPlaceholder bool
	}{
		{
			name:            "nil client renders placeholder",
			client:          nil,
			wantPlaceholder: true,
		},
		{
			name:            "empty name renders placeholder",
			client:          &Client{Name: "  "},
			wantPlaceholder: true,
		},
		{
			name:            "named client renders details",
			client:          &Client{Name: "Globex", Address: "12 Industry Way", Phone: "555-0101"},
			wantPlaceholder: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := testDocument()
			doc.Client = tt.client
			rc := newRecordingCanvas()
			eng := newTestEngine(rc, doc, StyleClassic)

			next := eng.drawRecipient(200)
			if next <= 200 {
				t.Errorf("cursor did not advance: %v", next)
			}

			gotPlaceholder := len(rc.textOps(recipientPlaceholder)) > 0
			if gotPlaceholder != tt.wantPlaceholder {
				t.Errorf("placeholder rendered = %v, want %v", gotPlaceholder, tt.wantPlaceholder)
			}
			if !tt.wantPlaceholder {
				if len(rc.textOps(tt.client.Name)) == 0 {
					t.Error("client name not rendered")
				}
			}
		})
	}
}

func TestDrawRecipient_ClosingRule(t *testing.T) {
	t.Parallel()

	// Classic carries the closing rule, Modern does not.
	for _, tt := range []struct {
		style TemplateStyle
		want  bool
	}{
		{StyleClassic, true},
		{StyleModern, false},
	} {
		rc := newRecordingCanvas()
		eng := newTestEngine(rc, testDocument(), tt.style)
		eng.drawRecipient(200)
		if got := rc.countKind("line") > 0; got != tt.want {
			t.Errorf("%s: closing rule = %v, want %v", tt.style, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDrawItemTable - columns, stripes, pagination
// ---------------------------------------------------------------------------

func TestDrawItemTable_ColumnsAndStripes(t *testing.T) {
	t.Parallel()

	doc := testDocument()
	doc.Items = append(doc.Items, LineItem{Name: "Support", Quantity: dec("3"), UnitPrice: dec("7"), Taxable: false})
	rc := newRecordingCanvas()
	eng := newTestEngine(rc, doc, StyleTealAccent)

	eng.drawItemTable(300)

	for _, want := range []string{"DESCRIPTION", "QTY", "UNIT PRICE", "AMOUNT"} {
		if len(rc.textOps(want)) != 1 {
			t.Errorf("expected exactly one header cell %q", want)
		}
	}
	if len(rc.textOps("2 hrs")) != 1 {
		t.Error("quantity cell must join quantity and unit label")
	}
	if len(rc.textOps("$20.00")) != 1 {
		t.Error("amount cell must render the formatted line total")
	}

	// Rows at index 1 and... only index 1 of three rows is odd, plus the
	// header fill: stripe fills use the stripe tone.
	stripes := 0
	for _, op := range rc.ops {
		if op.kind == "fill" && op.color == LookupStyle(StyleTealAccent).Stripe {
			stripes++
		}
	}
	if stripes != 1 {
		t.Errorf("expected 1 stripe fill for 3 rows, got %d", stripes)
	}
}

func TestDrawItemTable_Pagination(t *testing.T) {
	t.Parallel()

	doc := manyItemsDocument(60)
	rc := newRecordingCanvas()
	eng := newTestEngine(rc, doc, StyleModern)

	eng.drawItemTable(300)

	if rc.pages < 2 {
		t.Fatalf("60 items must paginate, got %d page(s)", rc.pages)
	}

	// Every item drawn exactly once: no drops, no duplicates.
	rows := 0
	for _, op := range rc.ops {
		if op.kind == "text" && op.wrap && strings.HasPrefix(op.text, "Item ") {
			rows++
		}
	}
	if rows != 60 {
		t.Errorf("rendered %d item rows, want 60", rows)
	}

	// The column header row is not repeated on later pages.
	for _, op := range rc.textOps("DESCRIPTION") {
		if op.page != 1 {
			t.Errorf("header row repeated on page %d", op.page)
		}
	}

	// Rows on continuation pages restart at the top margin.
	for _, op := range rc.ops {
		if op.kind == "text" && op.page > 1 && op.rect.Y < marginTop {
			t.Errorf("row above top margin on page %d: y=%v", op.page, op.rect.Y)
		}
	}
}

func TestDrawItemTable_RowHeightGrowsWithDescription(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a detailed description of the work performed ", 6)
	doc := testDocument()
	doc.Items = []LineItem{
		{Name: "Short", Quantity: dec("1"), UnitPrice: dec("1")},
		{Name: "Long", Description: long, Quantity: dec("1"), UnitPrice: dec("1")},
	}
	rc := newRecordingCanvas()
	eng := newTestEngine(rc, doc, StyleModern)

	next := eng.drawItemTable(300)

	minHeight := 300.0 + 22 + 2*(baseRowHeight+rowPadding)
	if next <= minHeight {
		t.Errorf("cursor %v suggests wrapped description did not grow its row", next)
	}
}

// ---------------------------------------------------------------------------
// TestDrawSummary - totals box labels
// ---------------------------------------------------------------------------

func TestDrawSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		discount  Discount
		wantLabel string
		wantValue string
	}{
		{
			name:      "fixed discount labeled with symbol",
			discount:  Discount{Value: dec("5"), Mode: DiscountFixed},
			wantLabel: "Discount ($):",
			wantValue: "-$5.00",
		},
		{
			name:      "percentage discount labeled with rate",
			discount:  Discount{Value: dec("10"), Mode: DiscountPercent},
			wantLabel: "Discount (10%):",
			wantValue: "-$2.75",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := testDocument()
			doc.Discount = tt.discount
			rc := newRecordingCanvas()
			eng := newTestEngine(rc, doc, StyleGoldTheme)

			eng.drawSummary(600)

			for _, want := range []string{"Subtotal:", "Tax (10%):", "Total:", tt.wantLabel, tt.wantValue} {
				if len(rc.textOps(want)) == 0 {
					t.Errorf("missing %q", want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDrawFooter - wording and first-page pinning
// ---------------------------------------------------------------------------

func TestDrawFooter(t *testing.T) {
	t.Parallel()

	t.Run("invoice wording", func(t *testing.T) {
		t.Parallel()

		rc := newRecordingCanvas()
		eng := newTestEngine(rc, testDocument(), StyleModern)
		eng.drawFooter()

		ops := rc.textOps("Thank you for your business!")
		if len(ops) != 1 {
			t.Fatalf("expected one footer line, got %d", len(ops))
		}
		if got := ops[0].rect.Y; got != pageHeight-footerOffset {
			t.Errorf("footer y = %v, want %v", got, pageHeight-footerOffset)
		}
	})

	t.Run("estimate wording", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.Kind = KindEstimate
		rc := newRecordingCanvas()
		eng := newTestEngine(rc, doc, StyleModern)
		eng.drawFooter()

		if len(rc.textOps("considering our estimate")) != 1 {
			t.Error("expected estimate footer wording")
		}
	})

	// Regression: the footer stays at its fixed offset on page one even when
	// the table overflowed, and the current page is restored afterwards.
	t.Run("pinned to first page after overflow", func(t *testing.T) {
		t.Parallel()

		doc := manyItemsDocument(60)
		rc := newRecordingCanvas()
		eng := newTestEngine(rc, doc, StyleModern)

		eng.drawItemTable(300)
		if rc.pages < 2 {
			t.Fatal("fixture must paginate")
		}
		eng.drawFooter()

		ops := rc.textOps("Thank you for your business!")
		if len(ops) != 1 {
			t.Fatalf("expected one footer line, got %d", len(ops))
		}
		if ops[0].page != 1 {
			t.Errorf("footer drawn on page %d, want 1", ops[0].page)
		}
		if rc.page != rc.pages {
			t.Errorf("current page not restored: %d != %d", rc.page, rc.pages)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLayout_StyleDoesNotChangeTotals
// ---------------------------------------------------------------------------

func TestLayout_StyleDoesNotChangeTotals(t *testing.T) {
	t.Parallel()

	doc := testDocument()
	for _, style := range TemplateStyles() {
		rc := newRecordingCanvas()
		eng := newTestEngine(rc, doc, style)
		eng.drawSummary(600)

		if len(rc.textOps("$22.50")) == 0 {
			t.Errorf("%s: grand total changed with style", style)
		}
	}
}
