package service

import (
	"context"

	"go-tenant-user-api/internal/domain"
)

// QueryService serves the read side. Listing and fetching require an
// authenticated actor but no named permission.
type QueryService struct {
	users domain.UserRepository
}

func NewQueryService(users domain.UserRepository) *QueryService {
	return &QueryService{users: users}
}

// List pages users whose name matches the LIKE pattern ("%%" matches all).
func (s *QueryService) List(ctx context.Context, namePattern string, first, page int) (*domain.Page, error) {
	return s.users.List(ctx, namePattern, first, page)
}

func (s *QueryService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{Model: "User", ID: id}
	}
	return u, nil
}
