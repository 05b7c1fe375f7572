package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

// UserService manages accounts and roles
type UserService interface {
	// ListUsers returns every registered user
	ListUsers(ctx context.Context) ([]models.User, error)
	// Register inserts the user unless the email is already taken. created is
	// false when an account with the email exists; nothing is written then.
	Register(ctx context.Context, user *models.User) (result models.InsertResult, created bool, err error)
	// IsAdmin reports whether the account with this email holds the admin role.
	// Unknown emails are not admins.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// PromoteToAdmin sets the admin role on the user with the given id
	PromoteToAdmin(ctx context.Context, id string) (models.UpdateResult, error)
}

type userService struct {
	users store.UserStore
}

// NewUserService creates a new instance of UserService
func NewUserService(users store.UserStore) UserService {
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *userService) Register(ctx context.Context, user *models.User) (models.InsertResult, bool, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return models.InsertResult{}, false, fmt.Errorf("%w: email is required", models.ErrBadRequest)
	}

	_, err := s.users.FindUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return models.InsertResult{}, false, nil
	case !errors.Is(err, models.ErrNotFound):
		return models.InsertResult{}, false, err
	}

	// roles are granted through promotion only
	user.Role = models.RoleRegular
	user.ID = ""
	res, err := s.users.InsertUser(ctx, user)
	if err != nil {
		return models.InsertResult{}, false, err
	}
	return res, true, nil
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *userService) PromoteToAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	return s.users.SetUserRole(ctx, id, models.RoleAdmin)
}
