package pricing

import (
	"math"

	"github.com/turingco/quotation/internal/period"
)

type DiscountKind string

const (
	DiscountKindFixed      DiscountKind = "fixed"
	DiscountKindPercentage DiscountKind = "percentage"
)

// DiscountItem is one discount line as entered on the quotation.
// Amount is an absolute KRW amount for fixed discounts and a percentage
// of the base amount for percentage discounts. Percentages are not
// clamped to 0-100.
type DiscountItem struct {
	Label  string       `json:"label"`
	Amount float64      `json:"amount"`
	Kind   DiscountKind `json:"kind"`
}

// VATMode selects how VAT appears on the quotation.
type VATMode string

const (
	// VATModeInclusive treats the unit price as VAT-inclusive and quotes
	// a single final amount with no separate VAT line.
	VATModeInclusive VATMode = "inclusive"
	// VATModeItemized quotes a supply amount, a VAT line of one eleventh
	// of the supply amount, and their sum.
	VATModeItemized VATMode = "itemized"
)

// AppliedDiscount is a discount line resolved against a base amount.
type AppliedDiscount struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Amounts is the priced quotation. All values are KRW.
//
// SupplyAmount is always base minus total discount. Under the inclusive
// mode VAT is zero and Total equals SupplyAmount; under the itemized
// mode Total adds the VAT line back.
type Amounts struct {
	BaseAmount    int64             `json:"base_amount"`
	Discounts     []AppliedDiscount `json:"discounts"`
	TotalDiscount int64             `json:"total_discount"`
	SupplyAmount  int64             `json:"supply_amount"`
	VAT           int64             `json:"vat"`
	Total         int64             `json:"total"`
}

// Quote prices a quotation. It is a total function: a zero headcount
// yields the all-zero result (the form is still being filled in), and a
// discount total exceeding the base amount yields a negative total
// rather than an error. Discounts are all resolved against the same
// base amount and summed, so their order never changes the result.
func Quote(headcount int, unitPrice int64, p period.Period, discounts []DiscountItem, mode VATMode) Amounts {
	if headcount <= 0 {
		return Amounts{}
	}

	base := unitPrice * int64(headcount) * int64(p.Months)

	applied := make([]AppliedDiscount, 0, len(discounts))
	var totalDiscount int64
	for _, d := range discounts {
		amount := discountAmount(d, base)
		applied = append(applied, AppliedDiscount{Label: d.Label, Amount: amount})
		totalDiscount += amount
	}

	supply := base - totalDiscount

	amounts := Amounts{
		BaseAmount:    base,
		Discounts:     applied,
		TotalDiscount: totalDiscount,
		SupplyAmount:  supply,
		Total:         supply,
	}
	if mode == VATModeItemized {
		amounts.VAT = roundAmount(float64(supply) / 11)
		amounts.Total = supply + amounts.VAT
	}
	return amounts
}

func discountAmount(d DiscountItem, base int64) int64 {
	if d.Kind == DiscountKindPercentage {
		return roundAmount(float64(base) * d.Amount / 100)
	}
	return roundAmount(d.Amount)
}

func roundAmount(raw float64) int64 {
	return int64(math.Floor(raw + 0.5))
}
