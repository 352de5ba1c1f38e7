package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

type ClassModel struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title          string  `gorm:"column:title;type:varchar(150);not null" json:"title"`
	ImageURL       *string `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	InstructorName *string `gorm:"column:instructor_name;type:varchar(100)" json:"instructor_name,omitempty"`
	// pemilik kelas
	InstructorEmail string `gorm:"column:instructor_email;type:varchar(255);not null;index" json:"instructor_email"`

	AvailableSeats int            `gorm:"column:available_seats;not null;default:0;check:available_seats >= 0" json:"available_seats"`
	Price          float64        `gorm:"column:price;type:numeric(12,2);not null;default:0;check:price >= 0" json:"price"`
	Tags           pq.StringArray `gorm:"column:tags;type:text[]" json:"tags,omitempty"`

	EnrolledCount int     `gorm:"column:enrolled_count;not null;default:0;check:enrolled_count >= 0" json:"enrolled_count"`
	Status        string  `gorm:"column:status;type:varchar(20);not null;default:'pending';index" json:"status"`
	Feedback      *string `gorm:"column:feedback;type:text" json:"feedback,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClassModel) TableName() string { return "classes" }

// IsReviewable true selama status masih pending; approved/denied bersifat final
func (c *ClassModel) IsReviewable() bool {
	return c.Status == ClassStatusPending
}
