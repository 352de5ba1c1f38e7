package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	cartModel "soundwave_backend/internals/features/carts/model"
	helper "soundwave_backend/internals/helpers"
)

type Repository interface {
	ListByOwner(ctx context.Context, email string) ([]cartModel.CartModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*cartModel.CartModel, error)
	Create(ctx context.Context, entry *cartModel.CartModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClassChecker confirms a class exists when it is put into a cart.
type ClassChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CartService struct {
	repo    Repository
	classes ClassChecker
}

func NewCartService(repo Repository, classes ClassChecker) *CartService {
	return &CartService{repo: repo, classes: classes}
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ListForUser returns the cart of email. An empty email yields an empty
// cart; asking for someone else's cart is ErrForbidden.
func (s *CartService) ListForUser(ctx context.Context, callerEmail, email string) ([]cartModel.CartModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return []cartModel.CartModel{}, nil
	}
	if !sameEmail(callerEmail, email) {
		return nil, fmt.Errorf("cart of %s: %w", email, helper.ErrForbidden)
	}
	entries, err := s.repo.ListByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []cartModel.CartModel{}
	}
	return entries, nil
}

// Add stores entry for its owner. The same class may be added twice.
func (s *CartService) Add(ctx context.Context, entry *cartModel.CartModel) (*cartModel.CartModel, error) {
	entry.OwnerEmail = strings.ToLower(strings.TrimSpace(entry.OwnerEmail))
	if entry.OwnerEmail == "" {
		return nil, fmt.Errorf("owner email is required: %w", helper.ErrBadRequest)
	}
	if entry.ClassID == uuid.Nil {
		return nil, fmt.Errorf("class_id is required: %w", helper.ErrBadRequest)
	}

	ok, err := s.classes.Exists(ctx, entry.ClassID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("class %s: %w", entry.ClassID, helper.ErrNotFound)
	}

	entry.ID = uuid.New()
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove deletes entry id. Deletes are not idempotent.
func (s *CartService) Remove(ctx context.Context, callerEmail string, id uuid.UUID) error {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !sameEmail(entry.OwnerEmail, callerEmail) {
		return fmt.Errorf("cart entry %s: %w", id, helper.ErrForbidden)
	}
	return s.repo.Delete(ctx, id)
}
