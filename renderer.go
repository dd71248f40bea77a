package invoicepdf

import (
	"context"
	"fmt"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ Canvas        = (*fpdfCanvas)(nil)
	_ PageNavigator = (*fpdfCanvas)(nil)
)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	company       Company
	compute       ComputeOptions
	canvasFactory func() Canvas
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCompany sets the sending company rendered in the FROM block.
func WithCompany(c Company) Option {
	return func(r *Renderer) {
		r.cfg.company = c
	}
}

// WithComputeOptions sets the totals computation flags (currently only the
// item-level discount behavior).
func WithComputeOptions(opts ComputeOptions) Option {
	return func(r *Renderer) {
		r.cfg.compute = opts
	}
}

// WithCanvasFactory replaces the PDF canvas backend. Mainly a test seam;
// the default factory opens a gofpdf A4 page.
// Panics if factory is nil (programmer error, similar to time.NewTicker).
func WithCanvasFactory(factory func() Canvas) Option {
	if factory == nil {
		panic("invoicepdf: WithCanvasFactory factory must not be nil")
	}
	return func(r *Renderer) {
		r.cfg.canvasFactory = factory
	}
}

// Renderer turns financial documents into styled, paginated PDF bytes.
// Create with NewRenderer; a Renderer is safe for concurrent Render calls
// because every call draws on its own canvas and the shared configuration
// is read-only.
type Renderer struct {
	cfg rendererConfig
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithCompany, WithCanvasFactory).
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cfg: rendererConfig{
			canvasFactory: func() Canvas { return newFpdfCanvas() },
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the document in the given template style and returns the
// finalized PDF bytes. The input value is never mutated. The context is
// checked between layout phases; there is no partial output on error.
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (r *Renderer) Render(ctx context.Context, doc FinancialDocument, style TemplateStyle) (out []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	// TRUST BOUNDARY: documents built by library users are validated here;
	// CLI input is validated earlier at load time. Both paths converge.
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	canvas := r.cfg.canvasFactory()
	if canvas == nil {
		return nil, ErrNilCanvas
	}

	eng := newLayoutEngine(canvas, doc, style, r.cfg.company, r.cfg.compute)

	y := eng.drawHeader(marginTop) + gapAfterHeader
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	y = eng.drawSender(y) + gapAfterSender
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	y = eng.drawRecipient(y) + gapAfterRecipient
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	y = eng.drawItemTable(y) + gapAfterTable
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	eng.drawSummary(y)
	eng.drawFooter()

	pdfBytes, err := canvas.Finalize()
	if err != nil {
		return nil, fmt.Errorf("finalizing document: %w", err)
	}
	return pdfBytes, nil
}
