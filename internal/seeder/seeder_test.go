package seeder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/internal/repo"
	"go-tenant-user-api/pkg/utils"
)

func newTenantDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func admin() AdminAccount {
	return AdminAccount{Name: "Administrador", Email: "admin@tenant.local", Password: "secret-123"}
}

func TestTenantSeederPopulatesReferenceData(t *testing.T) {
	db := newTenantDB(t)
	s := NewDatabaseTenantSeeder(admin(), zap.NewNop())
	require.NoError(t, s.Run(context.Background(), db))

	var u domain.User
	require.NoError(t, db.Where("email = ?", "admin@tenant.local").First(&u).Error)
	assert.NotNil(t, u.EmailVerifiedAt, "seeded admin arrives verified")
	assert.True(t, utils.CheckPassword("secret-123", u.PasswordHash))
	assert.NotEqual(t, "secret-123", u.PasswordHash)

	var languages, configs int64
	require.NoError(t, db.Model(&domain.Language{}).Count(&languages).Error)
	require.NoError(t, db.Model(&domain.Config{}).Count(&configs).Error)
	assert.EqualValues(t, 3, languages)
	assert.EqualValues(t, 3, configs)
}

func TestTenantSeederWiresPermissions(t *testing.T) {
	db := newTenantDB(t)
	s := NewDatabaseTenantSeeder(admin(), zap.NewNop())
	require.NoError(t, s.Run(context.Background(), db))

	var u domain.User
	require.NoError(t, db.Where("email = ?", "admin@tenant.local").First(&u).Error)

	access := repo.NewAccessRepo(db)
	names, err := access.PermissionNames(context.Background(), u.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"create-user", "edit-user", "view-user"}, names)

	// Técnico exists but starts without grants
	tecnico, err := access.EnsureRole(context.Background(), RoleTecnico)
	require.NoError(t, err)
	var tecnicoPerms int64
	require.NoError(t, db.Table("permission_role").Where("role_id = ?", tecnico.ID).Count(&tecnicoPerms).Error)
	assert.Zero(t, tecnicoPerms)
}

func TestTenantSeederIsIdempotent(t *testing.T) {
	db := newTenantDB(t)
	s := NewDatabaseTenantSeeder(admin(), zap.NewNop())
	require.NoError(t, s.Run(context.Background(), db))
	require.NoError(t, s.Run(context.Background(), db))

	var users, roles, perms, languages int64
	require.NoError(t, db.Model(&domain.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&domain.Role{}).Count(&roles).Error)
	require.NoError(t, db.Model(&domain.Permission{}).Count(&perms).Error)
	require.NoError(t, db.Model(&domain.Language{}).Count(&languages).Error)

	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 2, roles)
	assert.EqualValues(t, 3, perms)
	assert.EqualValues(t, 3, languages)
}
