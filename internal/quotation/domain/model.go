package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/turingco/quotation/internal/pricing"
)

var PlanTypes = []string{"기본형", "환급형"}

// Quotation is a stored quotation draft. Amounts are never persisted;
// they are recomputed from these fields on every read so a pricing rule
// change reprices open drafts automatically.
type Quotation struct {
	ID snowflake.ID `gorm:"primaryKey;column:id" json:"id"`

	SchoolName string `gorm:"column:school_name" json:"school_name"`
	Recipient  string `gorm:"column:recipient" json:"recipient"`
	ItemName   string `gorm:"column:item_name" json:"item_name"`
	PlanType   string `gorm:"column:plan_type" json:"plan_type"`

	Headcount    int       `gorm:"column:headcount" json:"headcount"`
	ServiceStart time.Time `gorm:"column:service_start" json:"service_start"`
	ServiceEnd   time.Time `gorm:"column:service_end" json:"service_end"`
	UnitPrice    int64     `gorm:"column:unit_price" json:"unit_price"`

	Discounts []DiscountLine `gorm:"foreignKey:QuotationID;references:ID" json:"discounts"`

	Note string `gorm:"column:note" json:"note"`

	// LastDocumentNumber tracks the most recent issue; every issue
	// consumes a fresh sequence number even for the same quotation.
	LastDocumentNumber *string    `gorm:"column:last_document_number" json:"last_document_number,omitempty"`
	LastIssuedAt       *time.Time `gorm:"column:last_issued_at" json:"last_issued_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Quotation) TableName() string {
	return "quotations"
}

// DiscountLine is a discount entry in form insertion order. Position
// only drives display order; pricing sums the lines regardless.
type DiscountLine struct {
	ID          snowflake.ID         `gorm:"primaryKey;column:id" json:"id"`
	QuotationID snowflake.ID         `gorm:"column:quotation_id;index" json:"-"`
	Position    int                  `gorm:"column:position" json:"position"`
	Label       string               `gorm:"column:label" json:"label"`
	Amount      float64              `gorm:"column:amount" json:"amount"`
	Kind        pricing.DiscountKind `gorm:"column:kind" json:"kind"`
}

func (DiscountLine) TableName() string {
	return "quotation_discounts"
}

// PricingItems converts the stored lines into engine input, preserving
// position order.
func (q *Quotation) PricingItems() []pricing.DiscountItem {
	items := make([]pricing.DiscountItem, 0, len(q.Discounts))
	for _, d := range q.Discounts {
		items = append(items, pricing.DiscountItem{
			Label:  d.Label,
			Amount: d.Amount,
			Kind:   d.Kind,
		})
	}
	return items
}
