package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// writeSampleDocument writes a complete example document to path, useful as
// a starting point for hand-edited invoices.
func writeSampleDocument(path string) error {
	now := time.Now()

	sample := documentFile{
		ID:       uuid.NewString(),
		Kind:     "invoice",
		Title:    "Invoice",
		Status:   "Draft",
		Currency: currencyFile{Code: "USD", Symbol: "$"},
		TaxRate:  "10",
		Discount: discountFile{Value: "5", Mode: "fixed"},

		IssueDate: now.Format(dateLayout),
		DueDate:   now.AddDate(0, 1, 0).Format(dateLayout),

		Client: &clientFile{
			Name:    "Globex Corporation",
			Address: "12 Industry Way, Springfield",
			Email:   "ap@globex.example",
			Phone:   "555-0101",
		},
		Company: companyFile{
			Name:         "Acme LLC",
			Street:       "1 Main St",
			CityStateZip: "Metropolis, NY 10001",
			Email:        "billing@acme.example",
		},
		Items: []itemFile{
			{
				ID:          uuid.NewString(),
				Name:        "Design work",
				Description: "Landing page redesign, two review rounds",
				Quantity:    "12",
				UnitPrice:   "95",
				Unit:        "hrs",
				Taxable:     true,
			},
			{
				ID:        uuid.NewString(),
				Name:      "Hosting",
				Quantity:  "1",
				UnitPrice: "25",
				Unit:      "mo",
				Taxable:   false,
			},
		},
	}

	data, err := yaml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	// #nosec G306 -- sample documents are intended to be editable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}
