package repository

import (
	"context"
	"errors"

	"github.com/turingco/quotation/internal/sequence/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repositoryImpl struct{}

func NewRepository() domain.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindForUpdate(ctx context.Context, db *gorm.DB, yearKey string) (*domain.DocumentSequence, error) {
	q := db.WithContext(ctx)
	// sqlite has no row locks; its single-writer model covers us there.
	if db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var seq domain.DocumentSequence
	if err := q.Where("year_key = ?", yearKey).First(&seq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seq, nil
}

func (r *repositoryImpl) Save(ctx context.Context, db *gorm.DB, seq *domain.DocumentSequence) error {
	return db.WithContext(ctx).Save(seq).Error
}
