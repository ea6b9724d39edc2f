// Package seeder populates a freshly provisioned tenant database with its
// reference data: the admin user, languages, config entries and the
// role/permission tables. Every seeder is idempotent so re-running against
// a live tenant is safe.
package seeder

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-tenant-user-api/internal/domain"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db *gorm.DB) error
}

// DatabaseTenantSeeder fans out to the per-table seeders in a fixed
// order; permissions come last because they attach to the seeded user.
type DatabaseTenantSeeder struct {
	seeders []Seeder
	log     *zap.Logger
}

type AdminAccount struct {
	Name     string
	Email    string
	Password string
}

func NewDatabaseTenantSeeder(admin AdminAccount, log *zap.Logger) *DatabaseTenantSeeder {
	return &DatabaseTenantSeeder{
		log: log,
		seeders: []Seeder{
			&UserTableSeeder{Admin: admin},
			&LanguageTableSeeder{},
			&ConfigTableSeeder{},
			&PermissionTableSeeder{AdminEmail: admin.Email},
		},
	}
}

func (s *DatabaseTenantSeeder) Run(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.Permission{},
		&domain.Language{},
		&domain.Config{},
	); err != nil {
		return err
	}
	for _, sd := range s.seeders {
		if err := sd.Run(ctx, db); err != nil {
			s.log.Error("seeder failed", zap.String("seeder", sd.Name()), zap.Error(err))
			return err
		}
		s.log.Info("seeded", zap.String("seeder", sd.Name()))
	}
	return nil
}
