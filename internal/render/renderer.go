package render

import (
	"time"

	"github.com/turingco/quotation/internal/period"
	"github.com/turingco/quotation/internal/pricing"
)

// RenderInput is the deterministic input used for quotation rendering.
// All computation happens before rendering; the renderer only lays out
// what it is given.
type RenderInput struct {
	DocumentNumber string
	IssueDate      time.Time

	Company   CompanyView
	Quotation QuotationView
	Period    period.Period
	Amounts   pricing.Amounts
	VATMode   pricing.VATMode

	// TotalPhrase is the written-out Korean reading of the final amount.
	TotalPhrase string
}

type CompanyView struct {
	Name        string
	BankName    string
	BankAccount string
	BankHolder  string
}

type QuotationView struct {
	SchoolName   string
	Recipient    string
	ItemName     string
	PlanType     string
	Headcount    int
	ServiceStart time.Time
	ServiceEnd   time.Time
	UnitPrice    int64
	Note         string
}

type Renderer interface {
	Render(input RenderInput) ([]byte, error)
}
