package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentModel adalah catatan pembayaran yang sudah dikonfirmasi; tidak diubah setelah ditulis
type PaymentModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PayerEmail    string    `gorm:"column:payer_email;type:varchar(255);not null;index" json:"payer_email"`
	Amount        float64   `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	ClassID       uuid.UUID `gorm:"column:class_id;type:uuid;not null;index" json:"class_id"`
	CartEntryID   uuid.UUID `gorm:"column:cart_entry_id;type:uuid;not null" json:"cart_entry_id"`
	TransactionID *string   `gorm:"column:transaction_id;type:varchar(100)" json:"transaction_id,omitempty"`

	// data tambahan dari klien (tanggal, status provider, nama kelas, dll)
	Meta datatypes.JSONMap `gorm:"column:meta;type:jsonb" json:"meta,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string { return "payments" }
