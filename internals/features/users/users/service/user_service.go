package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"soundwave_backend/internals/constants"
	userModel "soundwave_backend/internals/features/users/users/model"
	helper "soundwave_backend/internals/helpers"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	List(ctx context.Context) ([]userModel.UserModel, error)
	Create(ctx context.Context, u *userModel.UserModel) error
	SetRole(ctx context.Context, id uuid.UUID, role string) (*userModel.UserModel, error)
	RoleOf(ctx context.Context, email string) (string, error)
}

type UserService struct {
	repo Repository
}

func NewUserService(repo Repository) *UserService {
	return &UserService{repo: repo}
}

// Register inserts u unless its email is already known. created is false
// (and err nil) when the user existed; the stored record is returned then.
func (s *UserService) Register(ctx context.Context, u *userModel.UserModel) (*userModel.UserModel, bool, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" {
		return nil, false, fmt.Errorf("email is required: %w", helper.ErrBadRequest)
	}
	// the role is never taken from the registration body
	u.Role = constants.RoleNone

	existing, err := s.repo.FindByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, helper.ErrNotFound):
		return nil, false, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, helper.ErrConflict) {
			// lost the race to a concurrent insert; same outcome as already registered
			existing, ferr := s.repo.FindByEmail(ctx, u.Email)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return u, true, nil
}

func (s *UserService) List(ctx context.Context) ([]userModel.UserModel, error) {
	return s.repo.List(ctx)
}

func (s *UserService) SetRole(ctx context.Context, id uuid.UUID, role string) (*userModel.UserModel, error) {
	if !constants.IsValidRole(role) {
		return nil, fmt.Errorf("unknown role %q: %w", role, helper.ErrBadRequest)
	}
	return s.repo.SetRole(ctx, id, role)
}

// HasRole answers "am I <role>" for the caller. Asking about someone else is
// not an error; the answer is simply false.
func (s *UserService) HasRole(ctx context.Context, callerEmail, email, role string) (bool, error) {
	if !strings.EqualFold(strings.TrimSpace(callerEmail), strings.TrimSpace(email)) {
		return false, nil
	}
	current, err := s.repo.RoleOf(ctx, email)
	if err != nil {
		return false, err
	}
	return current == role, nil
}

// RoleOf exposes the persisted role for token issuance.
func (s *UserService) RoleOf(ctx context.Context, email string) (string, error) {
	role, err := s.repo.RoleOf(ctx, email)
	if err != nil {
		return "", err
	}
	if role == "" {
		role = constants.RoleNone
	}
	return role, nil
}
