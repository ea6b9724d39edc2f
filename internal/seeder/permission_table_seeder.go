package seeder

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/internal/repo"
)

const (
	RoleAdministrador = "Administrador"
	RoleTecnico       = "Técnico"
)

// defaultPermissions is every permission the tenant ships with. The
// Administrador role receives all of them; Técnico starts empty and is
// granted per-tenant.
var defaultPermissions = []string{
	"create-user",
	"edit-user",
	"view-user",
}

type PermissionTableSeeder struct {
	AdminEmail string
}

func (s *PermissionTableSeeder) Name() string { return "PermissionTableSeeder" }

func (s *PermissionTableSeeder) Run(ctx context.Context, db *gorm.DB) error {
	access := repo.NewAccessRepo(db)

	if _, err := access.EnsureRole(ctx, RoleTecnico); err != nil {
		return err
	}
	for _, p := range defaultPermissions {
		if err := access.GrantPermission(ctx, RoleAdministrador, p); err != nil {
			return err
		}
	}

	var admin domain.User
	err := db.WithContext(ctx).Where("email = ?", s.AdminEmail).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return access.AssignRole(ctx, admin.ID, RoleAdministrador)
}
