package invoicepdf

// Point is a position on the page in points (1/72 inch), origin top-left.
type Point struct {
	X, Y float64
}

// Size is a measured extent in points.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in points.
type Rect struct {
	X, Y, W, H float64
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors used by the layout.
var (
	colorWhite = Color{255, 255, 255}
	colorBlack = Color{33, 33, 33}
	colorGray  = Color{120, 120, 120}
)

// Font is a resolved font handle for the canvas backend.
type Font struct {
	Family string  // backend family name, e.g. "Helvetica"
	Style  string  // "" regular, "B" bold
	Size   float64 // points
}

// Horizontal alignment constants.
const (
	AlignLeft   Alignment = "L"
	AlignCenter Alignment = "C"
	AlignRight  Alignment = "R"
)

// Alignment is the horizontal alignment of drawn text within its rect.
type Alignment string

// Canvas is the minimal painter the layout engine draws against. The layout
// engine depends only on this interface, never on a concrete backend.
//
// Implementations are single-use: one document render per canvas, ending in
// exactly one Finalize call. They need not be safe for concurrent use.
type Canvas interface {
	// DrawText draws a single run of text. With wrap set, text is broken to
	// the rect width and rect.H is ignored; without it, text is drawn on one
	// line vertically centered in rect.H.
	DrawText(text string, rect Rect, font Font, color Color, align Alignment, wrap bool)

	// DrawTextRotated draws text rotated counterclockwise by angle degrees
	// around the at point. Used only by the sidebar header title.
	DrawTextRotated(text string, at Point, angle float64, font Font, color Color)

	// MeasureText returns the extent of text word-wrapped to width.
	MeasureText(text string, width float64, font Font) Size

	// FillRect fills a rectangle.
	FillRect(rect Rect, color Color)

	// StrokeLine strokes a straight line.
	StrokeLine(from, to Point, color Color, width float64)

	// BeginNewPage opens a fresh page and makes it current.
	BeginNewPage()

	// Finalize closes the document and returns its bytes. The canvas must
	// not be used afterwards.
	Finalize() ([]byte, error)
}

// PageNavigator is an optional canvas capability for drawing on an earlier
// page. The footer phase uses it to pin the footer to page one; canvases
// without it get the footer on the current page instead.
type PageNavigator interface {
	// PageCount returns the number of opened pages.
	PageCount() int

	// SetPage makes the 1-based page n current for subsequent draws.
	SetPage(n int)
}
