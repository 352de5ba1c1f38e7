package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	instructorModel "soundwave_backend/internals/features/instructors/model"
	helper "soundwave_backend/internals/helpers"
)

// ShowcaseLimit caps the public instructor listing.
const ShowcaseLimit = 6

type Repository interface {
	List(ctx context.Context, limit int) ([]instructorModel.InstructorModel, error)
	FindByEmail(ctx context.Context, email string) (*instructorModel.InstructorModel, error)
	Create(ctx context.Context, m *instructorModel.InstructorModel) error
}

type InstructorService struct {
	repo Repository
}

func NewInstructorService(repo Repository) *InstructorService {
	return &InstructorService{repo: repo}
}

func (s *InstructorService) Showcase(ctx context.Context) ([]instructorModel.InstructorModel, error) {
	list, err := s.repo.List(ctx, ShowcaseLimit)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []instructorModel.InstructorModel{}
	}
	return list, nil
}

// Register adds m to the directory unless its email is already listed, in
// which case the stored entry is returned with created=false.
func (s *InstructorService) Register(ctx context.Context, m *instructorModel.InstructorModel) (*instructorModel.InstructorModel, bool, error) {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Name = strings.TrimSpace(m.Name)
	if m.Email == "" || m.Name == "" {
		return nil, false, fmt.Errorf("name and email are required: %w", helper.ErrBadRequest)
	}

	existing, err := s.repo.FindByEmail(ctx, m.Email)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, helper.ErrNotFound):
		return nil, false, err
	}

	m.ID = uuid.New()
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, helper.ErrConflict) {
			existing, ferr := s.repo.FindByEmail(ctx, m.Email)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return m, true, nil
}
