package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, q *Quotation) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Quotation, error)
	List(ctx context.Context, db *gorm.DB, opts ListOptions, offset, limit int) ([]Quotation, error)
	UpdateIssueState(ctx context.Context, db *gorm.DB, q *Quotation) error
}
