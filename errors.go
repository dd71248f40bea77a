package invoicepdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrFinalize  = errors.New("PDF finalization failed")
	ErrNilCanvas = errors.New("canvas factory returned nil canvas")

	// Document validation errors.
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrInvalidDiscountMode = errors.New("invalid discount mode")

	// Template selection errors.
	ErrUnknownTemplate = errors.New("unknown template style")
)
