package domain

import (
	"context"
	"time"
)

type User struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	Name            string     `gorm:"size:191;not null" json:"name"`
	Email           string     `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash    string     `gorm:"size:191;not null" json:"-"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`

	Roles []Role `gorm:"many2many:role_user" json:"-"`
}

func (User) TableName() string { return "users" }

// Page is one page of a filtered user listing plus the filter-wide total.
type Page struct {
	Items   []User
	Total   int64
	Page    int
	PerPage int
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// EmailTaken reports whether another user already holds email.
	// excludeID, when non-empty, leaves that row out of the check.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	// List filters by a SQL LIKE pattern on name ("%%" matches all).
	List(ctx context.Context, namePattern string, perPage, page int) (*Page, error)
}
