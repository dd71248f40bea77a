package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	invoicepdf "github.com/avelar/go-invoicepdf"
)

// Sentinel errors for CLI I/O and decoding.
var (
	ErrNoInput       = errors.New("no input document (use -i)")
	ErrReadDocument  = errors.New("failed to read document file")
	ErrDocumentParse = errors.New("failed to parse document file")
	ErrWritePDF      = errors.New("failed to write PDF file")
)

// dateLayout is the on-disk date format.
const dateLayout = "2006-01-02"

// documentFile is the YAML schema. Monetary fields are strings decoded
// through ParseAmount so malformed stored values degrade to zero instead of
// failing the render.
type documentFile struct {
	ID       string       `yaml:"id"`
	Kind     string       `yaml:"kind"`
	Title    string       `yaml:"title"`
	Status   string       `yaml:"status"`
	Currency currencyFile `yaml:"currency"`
	TaxRate  string       `yaml:"taxRate"`
	Discount discountFile `yaml:"discount"`

	IssueDate string `yaml:"issueDate"`
	DueDate   string `yaml:"dueDate"`

	Client  *clientFile `yaml:"client"`
	Company companyFile `yaml:"company"`
	Items   []itemFile  `yaml:"items"`
}

type currencyFile struct {
	Code   string `yaml:"code"`
	Symbol string `yaml:"symbol"`
}

type discountFile struct {
	Value string `yaml:"value"`
	Mode  string `yaml:"mode"`
}

type clientFile struct {
	Name    string   `yaml:"name"`
	Address string   `yaml:"address"`
	Email   string   `yaml:"email"`
	Phone   string   `yaml:"phone"`
	TaxID   string   `yaml:"taxId"`
	Fax     string   `yaml:"fax"`
	Tags    []string `yaml:"tags"`
	Type    string   `yaml:"type"`
}

type companyFile struct {
	Name         string `yaml:"name"`
	Street       string `yaml:"street"`
	CityStateZip string `yaml:"cityStateZip"`
	Email        string `yaml:"email"`
}

type itemFile struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Quantity    string       `yaml:"quantity"`
	UnitPrice   string       `yaml:"unitPrice"`
	Unit        string       `yaml:"unit"`
	Discount    discountFile `yaml:"discount"`
	Taxable     bool         `yaml:"taxable"`
}

// loadDocument reads and decodes a document file into the render input
// value plus the sending company.
func loadDocument(path string) (invoicepdf.FinancialDocument, invoicepdf.Company, error) {
	var zero invoicepdf.FinancialDocument

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return zero, invoicepdf.Company{}, fmt.Errorf("%w: %v", ErrReadDocument, err)
	}

	var file documentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zero, invoicepdf.Company{}, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	doc := invoicepdf.FinancialDocument{
		ID:        file.ID,
		Kind:      invoicepdf.DocumentKind(file.Kind),
		Title:     file.Title,
		Status:    file.Status,
		Currency:  invoicepdf.Currency{Code: file.Currency.Code, Symbol: file.Currency.Symbol},
		TaxRate:   invoicepdf.ParseAmount(file.TaxRate),
		Discount:  toDiscount(file.Discount),
		IssueDate: parseDate(file.IssueDate),
		DueDate:   parseDate(file.DueDate),
	}
	if file.Client != nil {
		doc.Client = &invoicepdf.Client{
			Name:    file.Client.Name,
			Address: file.Client.Address,
			Email:   file.Client.Email,
			Phone:   file.Client.Phone,
			TaxID:   file.Client.TaxID,
			Fax:     file.Client.Fax,
			Tags:    file.Client.Tags,
			Type:    file.Client.Type,
		}
	}
	for _, it := range file.Items {
		doc.Items = append(doc.Items, invoicepdf.LineItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Quantity:    invoicepdf.ParseAmount(it.Quantity),
			UnitPrice:   invoicepdf.ParseAmount(it.UnitPrice),
			Unit:        it.Unit,
			Discount:    toDiscount(it.Discount),
			Taxable:     it.Taxable,
		})
	}

	company := invoicepdf.Company{
		Name:         file.Company.Name,
		Street:       file.Company.Street,
		CityStateZip: file.Company.CityStateZip,
		Email:        file.Company.Email,
	}

	if err := doc.Validate(); err != nil {
		return zero, invoicepdf.Company{}, err
	}
	return doc, company, nil
}

func toDiscount(d discountFile) invoicepdf.Discount {
	return invoicepdf.Discount{
		Value: invoicepdf.ParseAmount(d.Value),
		Mode:  invoicepdf.DiscountMode(d.Mode),
	}
}

// parseDate decodes a stored date defensively: malformed or empty input
// yields the zero time, which renders as an empty value.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
