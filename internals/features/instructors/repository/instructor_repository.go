package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	instructorModel "soundwave_backend/internals/features/instructors/model"
	helper "soundwave_backend/internals/helpers"
)

type InstructorRepository struct {
	DB *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{DB: db}
}

// List returns the most followed instructors first. limit <= 0 means no cap.
func (r *InstructorRepository) List(ctx context.Context, limit int) ([]instructorModel.InstructorModel, error) {
	tx := r.DB.WithContext(ctx).Order("students DESC, created_at ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var list []instructorModel.InstructorModel
	if err := tx.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *InstructorRepository) FindByEmail(ctx context.Context, email string) (*instructorModel.InstructorModel, error) {
	var m instructorModel.InstructorModel
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("instructor %s: %w", email, helper.ErrNotFound)
		}
		return nil, err
	}
	return &m, nil
}

func (r *InstructorRepository) Create(ctx context.Context, m *instructorModel.InstructorModel) error {
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fmt.Errorf("instructor %s already exists: %w", m.Email, helper.ErrConflict)
		}
		return fmt.Errorf("insert instructor: %v: %w", err, helper.ErrWrite)
	}
	return nil
}
