package seeder

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/pkg/utils"
)

// UserTableSeeder creates the tenant's administrator account with a
// verified email. An existing account is left untouched.
type UserTableSeeder struct {
	Admin AdminAccount
}

func (s *UserTableSeeder) Name() string { return "UserTableSeeder" }

func (s *UserTableSeeder) Run(ctx context.Context, db *gorm.DB) error {
	var u domain.User
	err := db.WithContext(ctx).Where("email = ?", s.Admin.Email).First(&u).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	now := time.Now()
	u = domain.User{
		ID:              utils.NewID(),
		Name:            s.Admin.Name,
		Email:           s.Admin.Email,
		PasswordHash:    utils.HashPassword(s.Admin.Password),
		EmailVerifiedAt: &now,
	}
	return db.WithContext(ctx).Create(&u).Error
}
