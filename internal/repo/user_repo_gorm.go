package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-tenant-user-api/internal/domain"
)

// ErrDuplicateEmail is returned when the users.email unique index rejects a
// write. The pre-check in the service can race with a concurrent insert, so
// the constraint is the source of truth.
var ErrDuplicateEmail = errors.New("email already taken")

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDupKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if isDupKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepo) List(ctx context.Context, namePattern string, perPage, page int) (*domain.Page, error) {
	if perPage <= 0 || perPage > 100 {
		perPage = 10
	}
	if page <= 0 {
		page = 1
	}

	q := r.db.WithContext(ctx).Model(&domain.User{})
	if namePattern != "" {
		q = q.Where("name LIKE ?", namePattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []domain.User
	offset := (page - 1) * perPage
	if err := q.Order("created_at DESC").Limit(perPage).Offset(offset).Find(&users).Error; err != nil {
		return nil, err
	}

	return &domain.Page{Items: users, Total: total, Page: page, PerPage: perPage}, nil
}

// isDupKey avoids depending on driver-specific error types; each supported
// driver words its unique-violation differently.
func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
