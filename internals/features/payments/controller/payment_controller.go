package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/features/payments/dto"
	paymentService "soundwave_backend/internals/features/payments/service"
	helper "soundwave_backend/internals/helpers"
)

type PaymentController struct {
	Service  *paymentService.PaymentService
	validate *validator.Validate
}

func NewPaymentController(svc *paymentService.PaymentService) *PaymentController {
	return &PaymentController{Service: svc, validate: validator.New()}
}

// POST /create-payment-intent
func (pc *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	caller, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.CreateIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	intent, err := pc.Service.CreateIntent(c.UserContext(), req.Price, caller)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Payment intent created", dto.CreateIntentResponse{
		ClientSecret: intent.ClientSecret,
		RedirectURL:  intent.RedirectURL,
		OrderID:      intent.OrderID,
		AmountMinor:  paymentService.ToMinorUnits(req.Price),
		Currency:     pc.Service.Currency(),
	})
}

// POST /payments
func (pc *PaymentController) SettlePayment(c *fiber.Ctx) error {
	caller, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.SettlePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := pc.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res, err := pc.Service.Settle(c.UserContext(), caller, req.ToModel())
	if err != nil {
		if errors.Is(err, helper.ErrPartialFailure) && res != nil {
			log.Printf("[ERROR] %v", err)
			return helper.JsonMultiStatus(c, "Payment recorded but settlement is incomplete", res)
		}
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Payment settled", res)
}

// GET /payments (admin)
func (pc *PaymentController) ListPayments(c *fiber.Ctx) error {
	payments, err := pc.Service.ListPayments(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Payments fetched successfully", dto.FromModelList(payments))
}

// GET /payments/history?email=
func (pc *PaymentController) PaymentHistory(c *fiber.Ctx) error {
	caller, err := helper.GetEmailFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	payments, err := pc.Service.ListPaymentsForUser(c.UserContext(), caller, c.Query("email"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Payment history fetched successfully", dto.FromModelList(payments))
}
