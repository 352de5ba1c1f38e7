package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cartModel "soundwave_backend/internals/features/carts/model"
	helper "soundwave_backend/internals/helpers"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) ListByOwner(ctx context.Context, email string) ([]cartModel.CartModel, error) {
	var entries []cartModel.CartModel
	if err := r.DB.WithContext(ctx).
		Where("owner_email = ?", email).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cartModel.CartModel, error) {
	var entry cartModel.CartModel
	if err := r.DB.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart entry %s: %w", id, helper.ErrNotFound)
		}
		return nil, err
	}
	return &entry, nil
}

func (r *CartRepository) Create(ctx context.Context, entry *cartModel.CartModel) error {
	if err := r.DB.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("insert cart entry: %v: %w", err, helper.ErrWrite)
	}
	return nil
}

// Delete removes the entry. A second delete of the same id is ErrNotFound.
func (r *CartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&cartModel.CartModel{})
	if res.Error != nil {
		return fmt.Errorf("delete cart entry: %v: %w", res.Error, helper.ErrWrite)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart entry %s: %w", id, helper.ErrNotFound)
	}
	return nil
}
