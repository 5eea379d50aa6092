package service

import (
	"context"
	"fmt"
	"time"

	"github.com/turingco/quotation/internal/sequence/domain"
	"github.com/turingco/quotation/internal/sequence/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	repo domain.Repository
}

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

func NewService(p ServiceParam) domain.Allocator {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("sequence.service"),

		repo: repository.NewRepository(),
	}
}

// Next increments the counter for today's year inside a single
// transaction and returns the formatted document number. The increment
// is durable before the number is handed out, so a failed render
// downstream leaves a gap rather than a duplicate.
func (s *Service) Next(ctx context.Context, today time.Time) (string, error) {
	yearKey := today.Format("2006")

	var number string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := s.repo.FindForUpdate(ctx, tx, yearKey)
		if err != nil {
			return err
		}
		if seq == nil {
			seq = &domain.DocumentSequence{YearKey: yearKey}
		}
		seq.LastValue++
		seq.UpdatedAt = today.UTC()
		if err := s.repo.Save(ctx, tx, seq); err != nil {
			return err
		}
		number = fmt.Sprintf("%s-%03d", yearKey, seq.LastValue)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("allocate document number: %w", err)
	}

	s.log.Debug("document number allocated", zap.String("number", number))
	return number, nil
}
