package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/turingco/quotation/internal/quotation/domain"
	"gorm.io/gorm"
)

type repositoryImpl struct{}

func NewRepository() domain.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Insert(ctx context.Context, db *gorm.DB, q *domain.Quotation) error {
	return db.WithContext(ctx).Create(q).Error
}

func (r *repositoryImpl) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Quotation, error) {
	var q domain.Quotation
	err := db.WithContext(ctx).
		Preload("Discounts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repositoryImpl) List(ctx context.Context, db *gorm.DB, opts domain.ListOptions, offset, limit int) ([]domain.Quotation, error) {
	q := db.WithContext(ctx).
		Preload("Discounts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit)

	if opts.SchoolName != "" {
		q = q.Where("school_name LIKE ?", "%"+opts.SchoolName+"%")
	}

	var out []domain.Quotation
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repositoryImpl) UpdateIssueState(ctx context.Context, db *gorm.DB, q *domain.Quotation) error {
	return db.WithContext(ctx).Model(q).
		Select("last_document_number", "last_issued_at", "updated_at").
		Updates(q).Error
}
