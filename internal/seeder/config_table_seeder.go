package seeder

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/pkg/utils"
)

type ConfigTableSeeder struct{}

func (s *ConfigTableSeeder) Name() string { return "ConfigTableSeeder" }

func (s *ConfigTableSeeder) Run(ctx context.Context, db *gorm.DB) error {
	defaults := []domain.Config{
		{Key: "language_default", Value: "pt-BR"},
		{Key: "timezone", Value: "America/Sao_Paulo"},
		{Key: "pagination_per_page", Value: "10"},
	}
	for _, cfg := range defaults {
		var existing domain.Config
		err := db.WithContext(ctx).Where("key = ?", cfg.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		cfg.ID = utils.NewID()
		if err := db.WithContext(ctx).Create(&cfg).Error; err != nil {
			return err
		}
	}
	return nil
}
