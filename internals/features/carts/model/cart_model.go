package model

import (
	"time"

	"github.com/google/uuid"
)

type CartModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerEmail string    `gorm:"column:owner_email;type:varchar(255);not null;index" json:"owner_email"`
	ClassID    uuid.UUID `gorm:"column:class_id;type:uuid;not null;index" json:"class_id"`

	// snapshot kelas saat dipilih
	Title    *string  `gorm:"column:title;type:varchar(150)" json:"title,omitempty"`
	Price    *float64 `gorm:"column:price;type:numeric(12,2)" json:"price,omitempty"`
	ImageURL *string  `gorm:"column:image_url;type:text" json:"image_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CartModel) TableName() string { return "carts" }
