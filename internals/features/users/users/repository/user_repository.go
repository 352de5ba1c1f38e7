// internals/features/users/users/repository/user_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "soundwave_backend/internals/features/users/users/model"
	helper "soundwave_backend/internals/helpers"
)

// UserRepository is the role store: users keyed by email.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, helper.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts u. A concurrent insert of the same email surfaces as ErrConflict.
func (r *UserRepository) Create(ctx context.Context, u *userModel.UserModel) error {
	u.Email = normalizeEmail(u.Email)
	u.SetDefaultValues()
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fmt.Errorf("user %s already exists: %w", u.Email, helper.ErrConflict)
		}
		return fmt.Errorf("insert user: %v: %w", err, helper.ErrWrite)
	}
	return nil
}

// SetRole updates the role of the user with id.
func (r *UserRepository) SetRole(ctx context.Context, id uuid.UUID, role string) (*userModel.UserModel, error) {
	res := r.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return nil, fmt.Errorf("update role: %v: %w", res.Error, helper.ErrWrite)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("user %s: %w", id, helper.ErrNotFound)
	}

	var user userModel.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// RoleOf returns the persisted role for email. Unknown users have no role.
func (r *UserRepository) RoleOf(ctx context.Context, email string) (string, error) {
	var role string
	err := r.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Select("role").
		Where("email = ?", normalizeEmail(email)).
		Limit(1).
		Scan(&role).Error
	if err != nil {
		return "", err
	}
	return role, nil
}
