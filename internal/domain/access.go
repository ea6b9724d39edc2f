package domain

import "context"

// Role groups permissions; a user holds a permission iff any of their
// roles contains it.
type Role struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"uniqueIndex;size:191;not null" json:"name"`

	Permissions []Permission `gorm:"many2many:permission_role" json:"permissions,omitempty"`
	Users       []User       `gorm:"many2many:role_user" json:"-"`
}

func (Role) TableName() string { return "roles" }

type Permission struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"uniqueIndex;size:191;not null" json:"name"`

	Roles []Role `gorm:"many2many:permission_role" json:"-"`
}

func (Permission) TableName() string { return "permissions" }

type AccessRepository interface {
	// PermissionNames returns every permission name reachable through the
	// user's roles.
	PermissionNames(ctx context.Context, userID string) ([]string, error)

	EnsureRole(ctx context.Context, name string) (*Role, error)
	EnsurePermission(ctx context.Context, name string) (*Permission, error)
	GrantPermission(ctx context.Context, roleName, permissionName string) error
	RevokePermission(ctx context.Context, roleName, permissionName string) error
	AssignRole(ctx context.Context, userID, roleName string) error
}
