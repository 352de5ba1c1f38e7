package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	paymentModel "soundwave_backend/internals/features/payments/model"
	helper "soundwave_backend/internals/helpers"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *paymentModel.PaymentModel) error {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert payment: %v: %w", err, helper.ErrWrite)
	}
	return nil
}

// List returns every payment in insertion order.
func (r *PaymentRepository) List(ctx context.Context) ([]paymentModel.PaymentModel, error) {
	var payments []paymentModel.PaymentModel
	if err := r.DB.WithContext(ctx).Order("created_at ASC, id ASC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByPayer returns the payments of email, newest first.
func (r *PaymentRepository) ListByPayer(ctx context.Context, email string) ([]paymentModel.PaymentModel, error) {
	var payments []paymentModel.PaymentModel
	if err := r.DB.WithContext(ctx).
		Where("payer_email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
