package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/turingco/quotation/internal/pricing"
	quotationdomain "github.com/turingco/quotation/internal/quotation/domain"
	"gorm.io/gorm"
)

// EnsureSampleQuotation inserts one demo quotation into an empty
// database for local development. Existing data is left untouched.
func EnsureSampleQuotation(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&quotationdomain.Quotation{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		q := &quotationdomain.Quotation{
			ID:           node.Generate(),
			SchoolName:   "서울고등학교",
			Recipient:    "교무부장",
			ItemName:     "수학대왕 AI코스웨어 이용권",
			PlanType:     "기본형",
			Headcount:    50,
			ServiceStart: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			ServiceEnd:   time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC),
			UnitPrice:    9900,
			Note:         "* 선생님용 계정 무제한 제공\n* 1:1 담당자 케어 서비스 제공",
		}
		q.Discounts = []quotationdomain.DiscountLine{
			{
				ID:          node.Generate(),
				QuotationID: q.ID,
				Position:    0,
				Label:       "신규 학교 할인",
				Amount:      100_000,
				Kind:        pricing.DiscountKindFixed,
			},
		}
		return tx.Create(q).Error
	})
}
