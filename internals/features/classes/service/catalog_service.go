package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	classModel "soundwave_backend/internals/features/classes/model"
	helper "soundwave_backend/internals/helpers"
)

type Repository interface {
	List(ctx context.Context, status string) ([]classModel.ClassModel, error)
	ListByInstructor(ctx context.Context, email string) ([]classModel.ClassModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*classModel.ClassModel, error)
	Create(ctx context.Context, class *classModel.ClassModel) error
	UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status string, feedback *string) (int64, error)
	IncrementEnrollment(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CatalogService struct {
	repo Repository
}

func NewCatalogService(repo Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns every class, most enrolled first.
func (s *CatalogService) List(ctx context.Context) ([]classModel.ClassModel, error) {
	return s.list(ctx, "")
}

// ListApproved is the public storefront: approved classes only.
func (s *CatalogService) ListApproved(ctx context.Context) ([]classModel.ClassModel, error) {
	return s.list(ctx, classModel.ClassStatusApproved)
}

func (s *CatalogService) list(ctx context.Context, status string) ([]classModel.ClassModel, error) {
	classes, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	SortByEnrollment(classes)
	return classes, nil
}

// SortByEnrollment orders by EnrolledCount descending. The sort is stable, so
// classes with equal counts keep their incoming (insertion) order.
func SortByEnrollment(classes []classModel.ClassModel) {
	sort.SliceStable(classes, func(i, j int) bool {
		return classes[i].EnrolledCount > classes[j].EnrolledCount
	})
}

func (s *CatalogService) ListByInstructor(ctx context.Context, email string) ([]classModel.ClassModel, error) {
	return s.repo.ListByInstructor(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// Create stores class on behalf of creatorEmail. Callers are expected to have
// passed the instructor gate already.
func (s *CatalogService) Create(ctx context.Context, creatorEmail string, class *classModel.ClassModel) (*classModel.ClassModel, error) {
	creatorEmail = strings.ToLower(strings.TrimSpace(creatorEmail))
	if creatorEmail == "" {
		return nil, fmt.Errorf("creator email is required: %w", helper.ErrUnauthorized)
	}
	if strings.TrimSpace(class.Title) == "" {
		return nil, fmt.Errorf("title is required: %w", helper.ErrBadRequest)
	}

	class.ID = uuid.New()
	class.InstructorEmail = creatorEmail
	class.EnrolledCount = 0
	class.Status = classModel.ClassStatusPending
	class.Feedback = nil

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// SetStatus approves or denies a pending class.
func (s *CatalogService) SetStatus(ctx context.Context, id uuid.UUID, status string, feedback *string) (*classModel.ClassModel, error) {
	if status != classModel.ClassStatusApproved && status != classModel.ClassStatusDenied {
		return nil, fmt.Errorf("status %q is not allowed: %w", status, helper.ErrBadRequest)
	}

	n, err := s.repo.UpdateStatusFromPending(ctx, id, status, feedback)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.IsReviewable() {
			return nil, fmt.Errorf("class %s was not updated: %w", id, helper.ErrWrite)
		}
		return nil, fmt.Errorf("class %s is already %s: %w", id, existing.Status, helper.ErrConflict)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) IncrementEnrollment(ctx context.Context, id uuid.UUID) error {
	return s.repo.IncrementEnrollment(ctx, id)
}

func (s *CatalogService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, id)
}
