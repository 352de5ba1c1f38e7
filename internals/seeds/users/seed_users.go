package users

import (
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"soundwave_backend/internals/constants"
	userModel "soundwave_backend/internals/features/users/users/model"
)

type UserSeed struct {
	Email    string  `json:"email"`
	Name     *string `json:"name"`
	PhotoURL *string `json:"photo_url"`
	Role     string  `json:"role"`
}

// SeedUsersFromJSON inserts users that are not present yet. Seeding is the
// only way to bootstrap the first admin.
func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[INFO] Reading user seed:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return err
	}

	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.Email))
		role := data.Role
		if !constants.IsValidRole(role) {
			log.Printf("[WARN] seed user %s has unknown role %q, using %q", email, role, constants.RoleNone)
			role = constants.RoleNone
		}

		var existing userModel.UserModel
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			log.Printf("[INFO] user %s already exists, skipped", email)
			continue
		}

		u := userModel.UserModel{
			ID:       uuid.New(),
			Email:    email,
			Name:     data.Name,
			PhotoURL: data.PhotoURL,
			Role:     role,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("[ERROR] seed user %s: %v", email, err)
			continue
		}
		log.Printf("[INFO] seeded user %s (%s)", email, role)
	}
	return nil
}
