package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/pkg/utils"
)

type AccessRepo struct{ db *gorm.DB }

func NewAccessRepo(db *gorm.DB) *AccessRepo { return &AccessRepo{db: db} }

func (r *AccessRepo) PermissionNames(ctx context.Context, userID string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("permissions").
		Distinct("permissions.name").
		Joins("JOIN permission_role ON permission_role.permission_id = permissions.id").
		Joins("JOIN role_user ON role_user.role_id = permission_role.role_id").
		Where("role_user.user_id = ?", userID).
		Order("permissions.name").
		Pluck("permissions.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *AccessRepo) EnsureRole(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role = domain.Role{ID: utils.NewID(), Name: name}
		if e := r.db.WithContext(ctx).Create(&role).Error; e != nil {
			return nil, e
		}
		return &role, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *AccessRepo) EnsurePermission(ctx context.Context, name string) (*domain.Permission, error) {
	var perm domain.Permission
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&perm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		perm = domain.Permission{ID: utils.NewID(), Name: name}
		if e := r.db.WithContext(ctx).Create(&perm).Error; e != nil {
			return nil, e
		}
		return &perm, nil
	}
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *AccessRepo) GrantPermission(ctx context.Context, roleName, permissionName string) error {
	role, err := r.EnsureRole(ctx, roleName)
	if err != nil {
		return err
	}
	perm, err := r.EnsurePermission(ctx, permissionName)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(role).Association("Permissions").Append(perm)
}

func (r *AccessRepo) RevokePermission(ctx context.Context, roleName, permissionName string) error {
	role, err := r.EnsureRole(ctx, roleName)
	if err != nil {
		return err
	}
	perm, err := r.EnsurePermission(ctx, permissionName)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(role).Association("Permissions").Delete(perm)
}

func (r *AccessRepo) AssignRole(ctx context.Context, userID, roleName string) error {
	role, err := r.EnsureRole(ctx, roleName)
	if err != nil {
		return err
	}
	user := domain.User{ID: userID}
	return r.db.WithContext(ctx).Model(&user).Association("Roles").Append(role)
}
