package main

import (
	"errors"
	"os"

	invoicepdf "github.com/avelar/go-invoicepdf"
)

// Exit codes for the invoicepdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, document, or template
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // PDF rendering/finalization errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, invoicepdf.ErrFinalize) ||
		errors.Is(err, invoicepdf.ErrNilCanvas) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadDocument) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage/document/validation errors (exit 2)
	if errors.Is(err, ErrDocumentParse) ||
		errors.Is(err, invoicepdf.ErrUnknownTemplate) ||
		errors.Is(err, invoicepdf.ErrInvalidDocumentKind) ||
		errors.Is(err, invoicepdf.ErrInvalidDiscountMode) {
		return ExitUsage
	}

	return ExitGeneral
}
