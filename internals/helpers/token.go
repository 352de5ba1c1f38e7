// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys diisi oleh middleware AuthJWT
const (
	LocUserEmail = "user_email"
	LocUserRole  = "user_role"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>" (case-insensitive, toleran spasi ganda)
// 2) cookie "access_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth != "" {
		fields := strings.Fields(auth)
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
		}
		return ""
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// GetEmailFromToken mengambil email identitas yang sudah diverifikasi middleware.
func GetEmailFromToken(c *fiber.Ctx) (string, error) {
	email, _ := c.Locals(LocUserEmail).(string)
	if strings.TrimSpace(email) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
	}
	return email, nil
}

// GetRoleFromToken mengembalikan role yang tertanam di token (bisa basi).
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}
