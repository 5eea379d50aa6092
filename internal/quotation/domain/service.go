package domain

import (
	"context"
	"time"

	"github.com/turingco/quotation/internal/period"
	"github.com/turingco/quotation/internal/pricing"
	"github.com/turingco/quotation/pkg/db/pagination"
)

type CreateRequest struct {
	SchoolName   string            `json:"school_name"`
	Recipient    string            `json:"recipient"`
	ItemName     string            `json:"item_name"`
	PlanType     string            `json:"plan_type"`
	Headcount    int               `json:"headcount"`
	ServiceStart string            `json:"service_start"`
	ServiceEnd   string            `json:"service_end"`
	UnitPrice    int64             `json:"unit_price"`
	Discounts    []DiscountRequest `json:"discounts"`
	Note         string            `json:"note"`
}

type DiscountRequest struct {
	Label  string               `json:"label"`
	Amount float64              `json:"amount"`
	Kind   pricing.DiscountKind `json:"kind"`
}

type ListOptions struct {
	SchoolName string `form:"school_name"`
	PageToken  string `form:"page_token"`
	PageSize   int    `form:"page_size"`
}

type ListResult struct {
	Quotations []Quotation
	PageInfo   pagination.PageInfo
}

// AmountsResult pairs the derived billing period with the priced
// amounts; neither is persisted.
type AmountsResult struct {
	Period  period.Period   `json:"period"`
	Amounts pricing.Amounts `json:"amounts"`
	VATMode pricing.VATMode `json:"vat_mode"`
	// TotalPhrase is the written-out Korean reading of the total, empty
	// when the total is negative.
	TotalPhrase string `json:"total_phrase,omitempty"`
}

// IssueResult is one rendered document. DocumentNumber is consumed
// durably before rendering; a render failure therefore leaves a gap in
// the sequence, never a duplicate.
type IssueResult struct {
	DocumentNumber string
	IssuedAt       time.Time
	Amounts        AmountsResult
	PDF            []byte
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Quotation, error)
	Get(ctx context.Context, id string) (*Quotation, error)
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	ComputeAmounts(ctx context.Context, id string) (*AmountsResult, error)
	Issue(ctx context.Context, id string) (*IssueResult, error)
}
