// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"soundwave_backend/internals/configs"
	database "soundwave_backend/internals/databases"

	cartController "soundwave_backend/internals/features/carts/controller"
	cartRepo "soundwave_backend/internals/features/carts/repository"
	cartRoute "soundwave_backend/internals/features/carts/route"
	cartService "soundwave_backend/internals/features/carts/service"

	classController "soundwave_backend/internals/features/classes/controller"
	classRepo "soundwave_backend/internals/features/classes/repository"
	classRoute "soundwave_backend/internals/features/classes/route"
	classService "soundwave_backend/internals/features/classes/service"

	instructorController "soundwave_backend/internals/features/instructors/controller"
	instructorRepo "soundwave_backend/internals/features/instructors/repository"
	instructorRoute "soundwave_backend/internals/features/instructors/route"
	instructorService "soundwave_backend/internals/features/instructors/service"

	paymentController "soundwave_backend/internals/features/payments/controller"
	paymentRepo "soundwave_backend/internals/features/payments/repository"
	paymentRoute "soundwave_backend/internals/features/payments/route"
	paymentService "soundwave_backend/internals/features/payments/service"

	authController "soundwave_backend/internals/features/users/auth/controller"
	authRoute "soundwave_backend/internals/features/users/auth/route"
	authService "soundwave_backend/internals/features/users/auth/service"

	userController "soundwave_backend/internals/features/users/users/controller"
	userRepo "soundwave_backend/internals/features/users/users/repository"
	userRoute "soundwave_backend/internals/features/users/users/route"
	userService "soundwave_backend/internals/features/users/users/service"

	authMiddleware "soundwave_backend/internals/middlewares/auth"
)

var startTime time.Time

// Handlers is everything the route table needs. Building it is separate from
// mounting it so the table can be exercised without a database.
type Handlers struct {
	Gate        authMiddleware.Gate
	Health      HealthChecker
	Auth        *authController.AuthController
	Users       *userController.UserController
	Classes     *classController.ClassController
	Carts       *cartController.CartController
	Instructors *instructorController.InstructorController
	Payments    *paymentController.PaymentController
}

// BuildHandlers wires repositories, services and controllers on top of db.
func BuildHandlers(db *gorm.DB, cfg configs.Config, provider paymentService.Provider) Handlers {
	users := userRepo.NewUserRepository(db)
	classes := classRepo.NewClassRepository(db)
	carts := cartRepo.NewCartRepository(db)

	tokens := authService.NewTokenService(cfg.JWTSecret)
	userSvc := userService.NewUserService(users)
	catalog := classService.NewCatalogService(classes)

	return Handlers{
		Gate:        authMiddleware.NewGate(tokens, userSvc),
		Health:      dbHealth{db: db},
		Auth:        authController.NewAuthController(tokens, userSvc, authService.NewGoogleVerifier(cfg.GoogleClientID)),
		Users:       userController.NewUserController(userSvc),
		Classes:     classController.NewClassController(catalog),
		Carts:       cartController.NewCartController(cartService.NewCartService(carts, catalog)),
		Instructors: instructorController.NewInstructorController(instructorService.NewInstructorService(instructorRepo.NewInstructorRepository(db))),
		Payments: paymentController.NewPaymentController(
			paymentService.NewPaymentService(paymentRepo.NewPaymentRepository(db), catalog, carts, provider, cfg.PaymentCurrency),
		),
	}
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, provider paymentService.Provider) {
	Mount(app, BuildHandlers(db, cfg, provider))
}

// Mount registers every route exactly once.
func Mount(app *fiber.App, h Handlers) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, h.Health)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, h.Auth)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, h.Users, h.Gate)

	log.Println("[INFO] Setting up ClassRoutes...")
	classRoute.ClassRoutes(app, h.Classes, h.Gate)

	log.Println("[INFO] Setting up CartRoutes...")
	cartRoute.CartRoutes(app, h.Carts, h.Gate)

	log.Println("[INFO] Setting up InstructorRoutes...")
	instructorRoute.InstructorRoutes(app, h.Instructors)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(app, h.Payments, h.Gate)
}

type dbHealth struct {
	db *gorm.DB
}

func (d dbHealth) Ping(c *fiber.Ctx) error {
	return database.Ping(c.UserContext(), d.db)
}
