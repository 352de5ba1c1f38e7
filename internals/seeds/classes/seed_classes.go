package classes

import (
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	classModel "soundwave_backend/internals/features/classes/model"
)

type ClassSeed struct {
	Title           string   `json:"title"`
	ImageURL        *string  `json:"image_url"`
	InstructorName  *string  `json:"instructor_name"`
	InstructorEmail string   `json:"instructor_email"`
	AvailableSeats  int      `json:"available_seats"`
	Price           float64  `json:"price"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
}

// SeedClassesFromJSON skips classes whose title already exists for the same instructor.
func SeedClassesFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[INFO] Reading class seed:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var inputs []ClassSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, in := range inputs {
		email := strings.ToLower(strings.TrimSpace(in.InstructorEmail))

		var count int64
		db.Model(&classModel.ClassModel{}).
			Where("title = ? AND instructor_email = ?", in.Title, email).
			Count(&count)
		if count > 0 {
			log.Printf("[INFO] class %q already exists, skipped", in.Title)
			continue
		}

		status := in.Status
		if status == "" {
			status = classModel.ClassStatusPending
		}
		class := classModel.ClassModel{
			ID:              uuid.New(),
			Title:           in.Title,
			ImageURL:        in.ImageURL,
			InstructorName:  in.InstructorName,
			InstructorEmail: email,
			AvailableSeats:  in.AvailableSeats,
			Price:           in.Price,
			Tags:            pq.StringArray(in.Tags),
			Status:          status,
		}
		if err := db.Create(&class).Error; err != nil {
			log.Printf("[ERROR] seed class %q: %v", in.Title, err)
			continue
		}
		log.Printf("[INFO] seeded class %q", in.Title)
	}
	return nil
}
