package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	paymentModel "soundwave_backend/internals/features/payments/model"
)

type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0,max=1000000000000"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	OrderID      string `json:"order_id"`
	AmountMinor  int64  `json:"amount_minor"`
	Currency     string `json:"currency"`
}

// SettlePaymentRequest is sent by the client once the provider confirmed the charge.
type SettlePaymentRequest struct {
	Email         string         `json:"email" validate:"omitempty,email"`
	Price         float64        `json:"price" validate:"gte=0,max=1000000000000"`
	ClassID       string         `json:"class_id" validate:"required,uuid"`
	CartID        string         `json:"cart_id" validate:"required,uuid"`
	TransactionID *string        `json:"transaction_id" validate:"omitempty,max=100"`
	Meta          map[string]any `json:"meta"`
}

func (r *SettlePaymentRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.ClassID = strings.TrimSpace(r.ClassID)
	r.CartID = strings.TrimSpace(r.CartID)
	if r.TransactionID != nil {
		t := strings.TrimSpace(*r.TransactionID)
		r.TransactionID = &t
	}
}

// ToModel assumes the request passed validation.
func (r *SettlePaymentRequest) ToModel() *paymentModel.PaymentModel {
	classID, _ := uuid.Parse(r.ClassID)
	cartID, _ := uuid.Parse(r.CartID)
	p := &paymentModel.PaymentModel{
		PayerEmail:    r.Email,
		Amount:        r.Price,
		ClassID:       classID,
		CartEntryID:   cartID,
		TransactionID: r.TransactionID,
	}
	if len(r.Meta) > 0 {
		p.Meta = datatypes.JSONMap(r.Meta)
	}
	return p
}

type PaymentResponse struct {
	ID            uuid.UUID         `json:"id"`
	PayerEmail    string            `json:"email"`
	Amount        float64           `json:"price"`
	ClassID       uuid.UUID         `json:"class_id"`
	CartEntryID   uuid.UUID         `json:"cart_id"`
	TransactionID *string           `json:"transaction_id,omitempty"`
	Meta          datatypes.JSONMap `json:"meta,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

func FromModel(p *paymentModel.PaymentModel) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		PayerEmail:    p.PayerEmail,
		Amount:        p.Amount,
		ClassID:       p.ClassID,
		CartEntryID:   p.CartEntryID,
		TransactionID: p.TransactionID,
		Meta:          p.Meta,
		CreatedAt:     p.CreatedAt,
	}
}

func FromModelList(list []paymentModel.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
