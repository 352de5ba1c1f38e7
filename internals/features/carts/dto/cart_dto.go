package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	cartModel "soundwave_backend/internals/features/carts/model"
)

type AddCartRequest struct {
	ClassID  string   `json:"class_id" validate:"required,uuid"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Title    *string  `json:"title" validate:"omitempty,max=150"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageURL *string  `json:"image_url" validate:"omitempty,url"`
}

func (r *AddCartRequest) Normalize() {
	r.ClassID = strings.TrimSpace(r.ClassID)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// ToModel assumes the request passed validation, so ClassID parses.
func (r *AddCartRequest) ToModel(owner string) *cartModel.CartModel {
	classID, _ := uuid.Parse(r.ClassID)
	return &cartModel.CartModel{
		OwnerEmail: owner,
		ClassID:    classID,
		Title:      r.Title,
		Price:      r.Price,
		ImageURL:   r.ImageURL,
	}
}

type CartResponse struct {
	ID         uuid.UUID `json:"id"`
	OwnerEmail string    `json:"email"`
	ClassID    uuid.UUID `json:"class_id"`
	Title      *string   `json:"title,omitempty"`
	Price      *float64  `json:"price,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModel(m *cartModel.CartModel) CartResponse {
	return CartResponse{
		ID:         m.ID,
		OwnerEmail: m.OwnerEmail,
		ClassID:    m.ClassID,
		Title:      m.Title,
		Price:      m.Price,
		ImageURL:   m.ImageURL,
		CreatedAt:  m.CreatedAt,
	}
}

func FromModelList(list []cartModel.CartModel) []CartResponse {
	out := make([]CartResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
