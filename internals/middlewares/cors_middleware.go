// middlewares/cors.go

package middlewares

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// CorsMiddleware builds the CORS handler from the configured origins.
// Credentials are only allowed for an explicit origin list; fiber refuses a
// wildcard together with credentials.
func CorsMiddleware(origins []string) fiber.Handler {
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	allowCredentials := true
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			log.Println("[WARN] CORS_ALLOW_ORIGINS contains \"*\": credentials disabled")
			origins = []string{"*"}
			allowCredentials = false
			break
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: allowCredentials,
	})
}
