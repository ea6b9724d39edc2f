package seeder

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/pkg/utils"
)

type LanguageTableSeeder struct{}

func (s *LanguageTableSeeder) Name() string { return "LanguageTableSeeder" }

func (s *LanguageTableSeeder) Run(ctx context.Context, db *gorm.DB) error {
	languages := []domain.Language{
		{Name: "Português", Slug: "pt-BR"},
		{Name: "English", Slug: "en"},
		{Name: "Español", Slug: "es"},
	}
	for _, l := range languages {
		var existing domain.Language
		err := db.WithContext(ctx).Where("slug = ?", l.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		l.ID = utils.NewID()
		if err := db.WithContext(ctx).Create(&l).Error; err != nil {
			return err
		}
	}
	return nil
}
