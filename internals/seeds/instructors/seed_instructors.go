package instructors

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	instructorModel "soundwave_backend/internals/features/instructors/model"
)

type InstructorSeed struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ImageURL     *string `json:"image_url"`
	Students     int     `json:"students"`
	ClassesTaken int     `json:"classes_taken"`
}

func SeedInstructorsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[INFO] Reading instructor seed:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var inputs []InstructorSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}

	rows := make([]instructorModel.InstructorModel, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, instructorModel.InstructorModel{
			ID:           uuid.New(),
			Name:         in.Name,
			Email:        in.Email,
			ImageURL:     in.ImageURL,
			Students:     in.Students,
			ClassesTaken: in.ClassesTaken,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return res.Error
	}
	log.Printf("[INFO] seeded %d of %d instructors", res.RowsAffected, len(rows))
	return nil
}
