package model

import (
	"time"

	"github.com/google/uuid"
)

// InstructorModel adalah etalase pengajar di halaman publik
type InstructorModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	ImageURL     *string   `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	Students     int       `gorm:"column:students;not null;default:0" json:"students"`
	ClassesTaken int       `gorm:"column:classes_taken;not null;default:0" json:"classes_taken"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (InstructorModel) TableName() string { return "instructors" }
