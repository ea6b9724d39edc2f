package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/pkg/utils"
)

func makeUser(t *testing.T, r *UserRepo, name string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        gofakeit.Email(),
		PasswordHash: utils.HashPassword("123456"),
	}
	require.NoError(t, r.Create(context.Background(), u))
	return u
}

func TestUserRepoCreateAndFind(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	u := makeUser(t, r, gofakeit.Name())

	got, err := r.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.Email, got.Email)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())

	byEmail, err := r.FindByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepoFindMissingReturnsNil(t *testing.T) {
	r := NewUserRepo(newTestDB(t))

	got, err := r.FindByID(context.Background(), "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoCreateDuplicateEmail(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	u := makeUser(t, r, gofakeit.Name())

	dup := &domain.User{
		ID:           utils.NewID(),
		Name:         gofakeit.Name(),
		Email:        u.Email,
		PasswordHash: utils.HashPassword("123456"),
	}
	err := r.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepoEmailTakenExcludesOwnRow(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	u := makeUser(t, r, gofakeit.Name())

	taken, err := r.EmailTaken(ctx, u.Email, "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = r.EmailTaken(ctx, u.Email, u.ID)
	require.NoError(t, err)
	assert.False(t, taken, "a user keeping their own email is not a conflict")

	taken, err = r.EmailTaken(ctx, "free@example.com", "")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserRepoListFiltersAndPages(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		makeUser(t, r, fmt.Sprintf("Alpha %d", i))
	}
	for i := 0; i < 3; i++ {
		makeUser(t, r, fmt.Sprintf("Beta %d", i))
	}

	all, err := r.List(ctx, "%%", 10, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 8, all.Total)
	assert.Len(t, all.Items, 8)

	alphas, err := r.List(ctx, "%Alpha%", 10, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 5, alphas.Total)

	paged, err := r.List(ctx, "%%", 3, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 8, paged.Total)
	assert.Len(t, paged.Items, 3)
	assert.Equal(t, 2, paged.Page)
	assert.Equal(t, 3, paged.PerPage)
}
