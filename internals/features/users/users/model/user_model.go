package model

import (
	"time"

	"github.com/google/uuid"

	"soundwave_backend/internals/constants"
)

// UserModel merepresentasikan tabel users; role disimpan di sini (role store)
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email    string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name     *string   `gorm:"size:100" json:"name,omitempty"`
	PhotoURL *string   `gorm:"column:photo_url;type:text" json:"photo_url,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'none'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum insert
func (u *UserModel) SetDefaultValues() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleNone
	}
}
