package domain

import "time"

// DocumentSequence is the per-year document counter. LastValue holds
// the last issued number; it only ever increases and numbers are never
// reused, even when the rendered document is discarded.
type DocumentSequence struct {
	YearKey   string    `gorm:"primaryKey;column:year_key" json:"year_key"`
	LastValue int       `gorm:"column:last_value" json:"last_value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (DocumentSequence) TableName() string {
	return "document_sequences"
}
