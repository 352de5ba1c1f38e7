package route

import (
	"github.com/gofiber/fiber/v2"

	cartController "soundwave_backend/internals/features/carts/controller"
	authMiddleware "soundwave_backend/internals/middlewares/auth"
)

func CartRoutes(r fiber.Router, ctrl *cartController.CartController, gate authMiddleware.Gate) {
	carts := r.Group("/carts", gate.Authenticated())

	carts.Get("/", ctrl.ListCart)
	carts.Post("/", ctrl.AddToCart)
	carts.Delete("/:id", ctrl.RemoveFromCart)
}
