package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	classModel "soundwave_backend/internals/features/classes/model"
)

type CreateClassRequest struct {
	Title          string   `json:"title" validate:"required,max=150"`
	ImageURL       *string  `json:"image_url" validate:"omitempty,url"`
	InstructorName *string  `json:"instructor_name" validate:"omitempty,max=100"`
	AvailableSeats int      `json:"available_seats" validate:"gte=0"`
	Price          float64  `json:"price" validate:"gte=0"`
	Tags           []string `json:"tags" validate:"omitempty,max=10,dive,max=40"`
}

func (r *CreateClassRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	tags := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}
	r.Tags = tags
}

func (r *CreateClassRequest) ToModel() *classModel.ClassModel {
	return &classModel.ClassModel{
		Title:          r.Title,
		ImageURL:       r.ImageURL,
		InstructorName: r.InstructorName,
		AvailableSeats: r.AvailableSeats,
		Price:          r.Price,
		Tags:           r.Tags,
	}
}

// ReviewClassRequest is the optional body of the approve/deny endpoints.
type ReviewClassRequest struct {
	Feedback *string `json:"feedback" validate:"omitempty,max=1000"`
}

type ClassResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	ImageURL        *string   `json:"image_url,omitempty"`
	InstructorName  *string   `json:"instructor_name,omitempty"`
	InstructorEmail string    `json:"instructor_email"`
	AvailableSeats  int       `json:"available_seats"`
	Price           float64   `json:"price"`
	Tags            []string  `json:"tags,omitempty"`
	EnrolledCount   int       `json:"enrolled_count"`
	Status          string    `json:"status"`
	Feedback        *string   `json:"feedback,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromModel(m *classModel.ClassModel) ClassResponse {
	return ClassResponse{
		ID:              m.ID,
		Title:           m.Title,
		ImageURL:        m.ImageURL,
		InstructorName:  m.InstructorName,
		InstructorEmail: m.InstructorEmail,
		AvailableSeats:  m.AvailableSeats,
		Price:           m.Price,
		Tags:            m.Tags,
		EnrolledCount:   m.EnrolledCount,
		Status:          m.Status,
		Feedback:        m.Feedback,
		CreatedAt:       m.CreatedAt,
	}
}

func FromModelList(list []classModel.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
