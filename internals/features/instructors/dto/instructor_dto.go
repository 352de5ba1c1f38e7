package dto

import (
	"strings"

	instructorModel "soundwave_backend/internals/features/instructors/model"
)

type RegisterInstructorRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	ImageURL     *string `json:"image_url" validate:"omitempty,url"`
	Students     int     `json:"students" validate:"gte=0"`
	ClassesTaken int     `json:"classes_taken" validate:"gte=0"`
}

func (r *RegisterInstructorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *RegisterInstructorRequest) ToModel() *instructorModel.InstructorModel {
	return &instructorModel.InstructorModel{
		Name:         r.Name,
		Email:        r.Email,
		ImageURL:     r.ImageURL,
		Students:     r.Students,
		ClassesTaken: r.ClassesTaken,
	}
}

type RegisterInstructorResponse struct {
	Inserted   bool                             `json:"inserted"`
	Instructor *instructorModel.InstructorModel `json:"instructor,omitempty"`
}
