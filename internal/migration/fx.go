package migration

import (
	quotationdomain "github.com/turingco/quotation/internal/quotation/domain"
	sequencedomain "github.com/turingco/quotation/internal/sequence/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB) error {
		// The sqlite driver is for local development; AutoMigrate keeps
		// it in step without a second migration set.
		if conn.Dialector.Name() != "postgres" {
			return conn.AutoMigrate(
				&quotationdomain.Quotation{},
				&quotationdomain.DiscountLine{},
				&sequencedomain.DocumentSequence{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
