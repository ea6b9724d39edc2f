package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"go-tenant-user-api/internal/authz"
	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/internal/repo"
	"go-tenant-user-api/internal/validation"
	"go-tenant-user-api/pkg/utils"
)

const (
	PermCreateUser = "create-user"
	PermEditUser   = "edit-user"

	opUserCreate = "UserCreate"
	opUserEdit   = "UserEdit"
)

type CreateInput struct {
	Name     string
	Email    string
	Password string
}

type EditInput struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// UserService runs each mutation through the same pipeline: permission
// gate first (a refusal wins over any payload problem), then the
// operation's rule set, then persistence. Passwords only ever reach the
// store as bcrypt hashes.
type UserService struct {
	users domain.UserRepository
	gate  *authz.Gate
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, gate *authz.Gate, log *zap.Logger) *UserService {
	return &UserService{users: users, gate: gate, log: log}
}

func (s *UserService) Create(ctx context.Context, actorID string, in CreateInput) (*domain.User, error) {
	if err := s.authorize(ctx, actorID, PermCreateUser); err != nil {
		return nil, err
	}

	rules := s.userRules(opUserCreate, in.Name, in.Email, in.Password, "")
	violations, err := rules.Validate(ctx)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			// lost the race against a concurrent create; same contract
			// as the pre-check catching it
			return nil, s.uniqueViolation(opUserCreate)
		}
		return nil, err
	}

	s.log.Info("user created", zap.String("id", u.ID), zap.String("actor", actorID))
	return u, nil
}

func (s *UserService) Edit(ctx context.Context, actorID string, in EditInput) (*domain.User, error) {
	if err := s.authorize(ctx, actorID, PermEditUser); err != nil {
		return nil, err
	}

	u, err := s.users.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{Model: "User", ID: in.ID}
	}

	// uniqueness excludes the row being edited: keeping your own email
	// is not a conflict
	rules := s.userRules(opUserEdit, in.Name, in.Email, in.Password, u.ID)
	violations, err := rules.Validate(ctx)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	u.Name = in.Name
	u.Email = in.Email
	u.PasswordHash = utils.HashPassword(in.Password)
	if err := s.users.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, s.uniqueViolation(opUserEdit)
		}
		return nil, err
	}

	s.log.Info("user edited", zap.String("id", u.ID), zap.String("actor", actorID))
	return u, nil
}

func (s *UserService) authorize(ctx context.Context, actorID, permission string) error {
	ok, err := s.gate.Allows(ctx, actorID, permission)
	if err != nil {
		return err
	}
	if !ok {
		return &UnauthorizedError{Permission: permission}
	}
	return nil
}

// userRules declares the ordered rule set shared by create and edit; the
// operation name prefixes every rule key, and excludeID scopes the
// uniqueness check for edit.
func (s *UserService) userRules(op, name, email, password, excludeID string) *validation.RuleSet {
	return validation.New(op).
		Add("name", "name_required", validation.Static(validation.NotBlank(name))).
		Add("email", "email_required", validation.Static(validation.NotBlank(email))).
		Add("email", "email_is_valid", validation.Static(validation.EmailValid(email))).
		Add("email", "email_unique", func(ctx context.Context) (bool, error) {
			taken, err := s.users.EmailTaken(ctx, email, excludeID)
			return !taken, err
		}).
		Add("password", "password_required", validation.Static(validation.NotBlank(password))).
		Add("password", "password_min_6", validation.Static(validation.MinLen(password, 6)))
}

func (s *UserService) uniqueViolation(op string) error {
	return &ValidationError{Violations: validation.Violations{
		{Field: "email", Key: op + ".email_unique"},
	}}
}
