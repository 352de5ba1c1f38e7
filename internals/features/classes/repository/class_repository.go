package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "soundwave_backend/internals/features/classes/model"
	helper "soundwave_backend/internals/helpers"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

// List returns classes in insertion order, optionally filtered by status.
func (r *ClassRepository) List(ctx context.Context, status string) ([]classModel.ClassModel, error) {
	tx := r.DB.WithContext(ctx).Order("created_at ASC, id ASC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var classes []classModel.ClassModel
	if err := tx.Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]classModel.ClassModel, error) {
	var classes []classModel.ClassModel
	if err := r.DB.WithContext(ctx).
		Where("instructor_email = ?", email).
		Order("created_at DESC").
		Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*classModel.ClassModel, error) {
	var class classModel.ClassModel
	if err := r.DB.WithContext(ctx).First(&class, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class %s: %w", id, helper.ErrNotFound)
		}
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) Create(ctx context.Context, class *classModel.ClassModel) error {
	if err := r.DB.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("insert class: %v: %w", err, helper.ErrWrite)
	}
	return nil
}

// UpdateStatusFromPending moves a pending class to status. It returns the
// number of rows changed; zero means the class is missing or already reviewed.
func (r *ClassRepository) UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status string, feedback *string) (int64, error) {
	updates := map[string]any{"status": status}
	if feedback != nil {
		updates["feedback"] = *feedback
	}
	res := r.DB.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Where("id = ? AND status = ?", id, classModel.ClassStatusPending).
		Updates(updates)
	if res.Error != nil {
		return 0, fmt.Errorf("update class status: %v: %w", res.Error, helper.ErrWrite)
	}
	return res.RowsAffected, nil
}

// IncrementEnrollment adds one enrollment in a single UPDATE statement.
func (r *ClassRepository) IncrementEnrollment(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Where("id = ?", id).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("increment enrollment: %v: %w", res.Error, helper.ErrWrite)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("class %s: %w", id, helper.ErrNotFound)
	}
	return nil
}

func (r *ClassRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM classes WHERE id = ?)`, id).
		Scan(&exists).Error
	return exists, err
}
