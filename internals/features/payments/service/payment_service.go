package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"

	cartModel "soundwave_backend/internals/features/carts/model"
	paymentModel "soundwave_backend/internals/features/payments/model"
	helper "soundwave_backend/internals/helpers"
)

type Repository interface {
	Create(ctx context.Context, p *paymentModel.PaymentModel) error
	List(ctx context.Context) ([]paymentModel.PaymentModel, error)
	ListByPayer(ctx context.Context, email string) ([]paymentModel.PaymentModel, error)
}

// Enroller bumps the enrollment counter of a class.
type Enroller interface {
	IncrementEnrollment(ctx context.Context, classID uuid.UUID) error
}

// CartStore is the part of the cart store a settlement touches.
type CartStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*cartModel.CartModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	SettleStateSettled = "settled"
	SettleStatePartial = "partial"
)

// StepResult is the outcome of one settlement step.
type StepResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func stepOf(err error) StepResult {
	if err != nil {
		return StepResult{OK: false, Error: err.Error()}
	}
	return StepResult{OK: true}
}

type SettleResult struct {
	PaymentID    uuid.UUID  `json:"payment_id"`
	State        string     `json:"state"`
	Payment      StepResult `json:"payment"`
	Enrollment   StepResult `json:"enrollment"`
	CartDeletion StepResult `json:"cart_deletion"`
}

type PaymentService struct {
	repo     Repository
	classes  Enroller
	carts    CartStore
	provider Provider
	currency string
}

func NewPaymentService(repo Repository, classes Enroller, carts CartStore, provider Provider, currency string) *PaymentService {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "IDR"
	}
	return &PaymentService{
		repo:     repo,
		classes:  classes,
		carts:    carts,
		provider: provider,
		currency: currency,
	}
}

func (s *PaymentService) Currency() string { return s.currency }

// MaxIntentPrice caps a single charge so its minor-unit amount fits in int64
// with plenty of room.
const MaxIntentPrice = 1_000_000_000_000

// ToMinorUnits converts a price to the smallest currency unit.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent opens a charge of price for payerEmail with the provider.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64, payerEmail string) (IntentResult, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return IntentResult{}, fmt.Errorf("price must be positive: %w", helper.ErrBadRequest)
	}
	if price > MaxIntentPrice {
		return IntentResult{}, fmt.Errorf("price exceeds %d: %w", int64(MaxIntentPrice), helper.ErrBadRequest)
	}
	if s.provider == nil {
		return IntentResult{}, fmt.Errorf("no payment provider configured: %w", helper.ErrProvider)
	}
	return s.provider.CreateIntent(ctx, IntentRequest{
		OrderID:     "SW-" + uuid.NewString(),
		AmountMinor: ToMinorUnits(price),
		Currency:    s.currency,
		Email:       strings.ToLower(strings.TrimSpace(payerEmail)),
	})
}

// Settle finalizes a confirmed payment: it records p, enrolls the payer into
// p.ClassID and removes cart entry p.CartEntryID. The cart entry must belong
// to the same payer and class; that is checked before anything is written.
//
// The steps are not atomic. When recording fails nothing else runs and the
// error wraps ErrWrite. When a later step fails the record stays, every step
// is reported in the result and the error wraps ErrPartialFailure.
func (s *PaymentService) Settle(ctx context.Context, callerEmail string, p *paymentModel.PaymentModel) (*SettleResult, error) {
	caller := strings.ToLower(strings.TrimSpace(callerEmail))
	p.PayerEmail = strings.ToLower(strings.TrimSpace(p.PayerEmail))
	if p.PayerEmail == "" {
		p.PayerEmail = caller
	}
	if p.PayerEmail != caller {
		return nil, fmt.Errorf("payment for %s: %w", p.PayerEmail, helper.ErrForbidden)
	}
	if p.ClassID == uuid.Nil || p.CartEntryID == uuid.Nil {
		return nil, fmt.Errorf("class_id and cart_id are required: %w", helper.ErrBadRequest)
	}
	if p.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative: %w", helper.ErrBadRequest)
	}

	entry, err := s.carts.FindByID(ctx, p.CartEntryID)
	if err != nil {
		return nil, err
	}
	if entry.ClassID != p.ClassID || !strings.EqualFold(entry.OwnerEmail, p.PayerEmail) {
		return nil, fmt.Errorf("cart entry %s does not belong to this purchase: %w", entry.ID, helper.ErrBadRequest)
	}

	p.ID = uuid.New()
	if err := s.repo.Create(ctx, p); err != nil {
		if !errors.Is(err, helper.ErrWrite) {
			err = fmt.Errorf("%v: %w", err, helper.ErrWrite)
		}
		return nil, err
	}

	res := &SettleResult{
		PaymentID: p.ID,
		State:     SettleStateSettled,
		Payment:   StepResult{OK: true},
	}
	enrollErr := s.classes.IncrementEnrollment(ctx, p.ClassID)
	res.Enrollment = stepOf(enrollErr)
	cartErr := s.carts.Delete(ctx, p.CartEntryID)
	res.CartDeletion = stepOf(cartErr)

	if enrollErr != nil || cartErr != nil {
		res.State = SettleStatePartial
		log.Printf("[WARN] payment %s settled partially: enrollment=%v cart=%v", p.ID, enrollErr, cartErr)
		return res, fmt.Errorf("payment %s: %w", p.ID, helper.ErrPartialFailure)
	}
	log.Printf("[INFO] payment %s settled for %s (class %s)", p.ID, p.PayerEmail, p.ClassID)
	return res, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]paymentModel.PaymentModel, error) {
	return s.repo.List(ctx)
}

// ListPaymentsForUser returns the payment history of the caller only.
func (s *PaymentService) ListPaymentsForUser(ctx context.Context, callerEmail, email string) ([]paymentModel.PaymentModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = strings.ToLower(strings.TrimSpace(callerEmail))
	}
	if !strings.EqualFold(email, strings.TrimSpace(callerEmail)) {
		return nil, fmt.Errorf("payments of %s: %w", email, helper.ErrForbidden)
	}
	return s.repo.ListByPayer(ctx, email)
}
