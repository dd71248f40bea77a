package invoicepdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in points: ISO A4 at 72 dpi.
const (
	pageWidth  = 595.2
	pageHeight = 841.8
)

// lineSpacing converts a font size into a drawn line height.
const lineSpacing = 1.2

func lineHeight(f Font) float64 {
	return f.Size * lineSpacing
}

// fpdfCanvas implements Canvas on top of gofpdf. One instance renders one
// document; Finalize is terminal.
type fpdfCanvas struct {
	pdf *gofpdf.Fpdf
}

// creationDate is fixed so identical inputs produce identical bytes.
var creationDate = time.Unix(0, 0).UTC()

// newFpdfCanvas opens an A4 page in point units with layout-controlled page
// breaks (gofpdf's automatic break would fight the pagination logic).
func newFpdfCanvas() *fpdfCanvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetCreationDate(creationDate)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.AddPage()
	return &fpdfCanvas{pdf: pdf}
}

func (c *fpdfCanvas) setFont(f Font, col Color) {
	c.pdf.SetFont(f.Family, f.Style, f.Size)
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
}

// DrawText implements Canvas.
func (c *fpdfCanvas) DrawText(text string, rect Rect, font Font, color Color, align Alignment, wrap bool) {
	c.setFont(font, color)
	c.pdf.SetXY(rect.X, rect.Y)
	if wrap {
		c.pdf.MultiCell(rect.W, lineHeight(font), text, "", string(align), false)
		return
	}
	h := rect.H
	if h == 0 {
		h = lineHeight(font)
	}
	c.pdf.CellFormat(rect.W, h, text, "", 0, string(align)+"M", false, 0, "")
}

// DrawTextRotated implements Canvas.
func (c *fpdfCanvas) DrawTextRotated(text string, at Point, angle float64, font Font, color Color) {
	c.setFont(font, color)
	c.pdf.TransformBegin()
	c.pdf.TransformRotate(angle, at.X, at.Y)
	c.pdf.Text(at.X, at.Y, text)
	c.pdf.TransformEnd()
}

// MeasureText implements Canvas. Explicit newlines are honored; each segment
// is word-wrapped to width independently.
func (c *fpdfCanvas) MeasureText(text string, width float64, font Font) Size {
	c.pdf.SetFont(font.Family, font.Style, font.Size)
	lines := 0
	for _, segment := range strings.Split(text, "\n") {
		n := len(c.pdf.SplitText(segment, width))
		if n == 0 {
			n = 1
		}
		lines += n
	}
	return Size{W: width, H: float64(lines) * lineHeight(font)}
}

// FillRect implements Canvas.
func (c *fpdfCanvas) FillRect(rect Rect, color Color) {
	c.pdf.SetFillColor(int(color.R), int(color.G), int(color.B))
	c.pdf.Rect(rect.X, rect.Y, rect.W, rect.H, "F")
}

// StrokeLine implements Canvas.
func (c *fpdfCanvas) StrokeLine(from, to Point, color Color, width float64) {
	c.pdf.SetDrawColor(int(color.R), int(color.G), int(color.B))
	c.pdf.SetLineWidth(width)
	c.pdf.Line(from.X, from.Y, to.X, to.Y)
}

// BeginNewPage implements Canvas.
func (c *fpdfCanvas) BeginNewPage() {
	c.pdf.AddPage()
}

// PageCount implements PageNavigator.
func (c *fpdfCanvas) PageCount() int {
	return c.pdf.PageCount()
}

// SetPage implements PageNavigator.
func (c *fpdfCanvas) SetPage(n int) {
	c.pdf.SetPage(n)
}

// Finalize implements Canvas. Any drawing error gofpdf accumulated along the
// way surfaces here, wrapped in ErrFinalize.
func (c *fpdfCanvas) Finalize() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFinalize, err)
	}
	return buf.Bytes(), nil
}
