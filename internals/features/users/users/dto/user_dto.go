package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "soundwave_backend/internals/features/users/users/model"
)

type RegisterUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     *string `json:"name" validate:"omitempty,max=100"`
	PhotoURL *string `json:"photo_url" validate:"omitempty,url"`
}

func (r *RegisterUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		r.Name = &n
	}
}

func (r *RegisterUserRequest) ToModel() *userModel.UserModel {
	return &userModel.UserModel{
		Email:    r.Email,
		Name:     r.Name,
		PhotoURL: r.PhotoURL,
	}
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func FromModelList(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}

type RegisterUserResponse struct {
	Inserted bool          `json:"inserted"`
	User     *UserResponse `json:"user,omitempty"`
}
