package route

import (
	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/constants"
	paymentController "soundwave_backend/internals/features/payments/controller"
	authMiddleware "soundwave_backend/internals/middlewares/auth"
)

func PaymentRoutes(r fiber.Router, ctrl *paymentController.PaymentController, gate authMiddleware.Gate) {
	r.Post("/create-payment-intent", gate.Authenticated(), ctrl.CreatePaymentIntent)

	payments := r.Group("/payments")
	payments.Post("/", gate.Authenticated(), ctrl.SettlePayment)
	payments.Get("/history", gate.Authenticated(), ctrl.PaymentHistory)
	payments.Get("/", append(gate.Role(constants.RoleAdmin, "payment listing"), ctrl.ListPayments)...)
}
