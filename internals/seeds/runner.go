package seeds

import (
	"log"

	"gorm.io/gorm"

	"soundwave_backend/internals/seeds/classes"
	"soundwave_backend/internals/seeds/instructors"
	"soundwave_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* User
	if err := users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json"); err != nil {
		log.Printf("[ERROR] seed users: %v", err)
	}

	//* Instructor
	if err := instructors.SeedInstructorsFromJSON(db, "internals/seeds/instructors/data_instructors.json"); err != nil {
		log.Printf("[ERROR] seed instructors: %v", err)
	}

	//* Class
	if err := classes.SeedClassesFromJSON(db, "internals/seeds/classes/data_classes.json"); err != nil {
		log.Printf("[ERROR] seed classes: %v", err)
	}
}
