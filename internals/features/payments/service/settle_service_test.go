package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"

	cartModel "soundwave_backend/internals/features/carts/model"
	cartService "soundwave_backend/internals/features/carts/service"
	classModel "soundwave_backend/internals/features/classes/model"
	classService "soundwave_backend/internals/features/classes/service"
	paymentModel "soundwave_backend/internals/features/payments/model"
	helper "soundwave_backend/internals/helpers"
)

/* ---------- fakes ---------- */

type memClasses struct {
	classes map[uuid.UUID]*classModel.ClassModel
	incErr  error
}

func newMemClasses() *memClasses {
	return &memClasses{classes: map[uuid.UUID]*classModel.ClassModel{}}
}

func (m *memClasses) List(context.Context, string) ([]classModel.ClassModel, error) {
	out := []classModel.ClassModel{}
	for _, c := range m.classes {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memClasses) ListByInstructor(context.Context, string) ([]classModel.ClassModel, error) {
	return nil, nil
}

func (m *memClasses) FindByID(_ context.Context, id uuid.UUID) (*classModel.ClassModel, error) {
	c, ok := m.classes[id]
	if !ok {
		return nil, fmt.Errorf("class %s: %w", id, helper.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (m *memClasses) Create(_ context.Context, c *classModel.ClassModel) error {
	cp := *c
	m.classes[c.ID] = &cp
	return nil
}

func (m *memClasses) UpdateStatusFromPending(context.Context, uuid.UUID, string, *string) (int64, error) {
	return 0, nil
}

func (m *memClasses) IncrementEnrollment(_ context.Context, id uuid.UUID) error {
	if m.incErr != nil {
		return m.incErr
	}
	c, ok := m.classes[id]
	if !ok {
		return fmt.Errorf("class %s: %w", id, helper.ErrNotFound)
	}
	c.EnrolledCount++
	return nil
}

func (m *memClasses) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.classes[id]
	return ok, nil
}

type memCarts struct {
	entries   map[uuid.UUID]cartModel.CartModel
	deleteErr error
}

func newMemCarts() *memCarts {
	return &memCarts{entries: map[uuid.UUID]cartModel.CartModel{}}
}

func (m *memCarts) ListByOwner(_ context.Context, email string) ([]cartModel.CartModel, error) {
	var out []cartModel.CartModel
	for _, e := range m.entries {
		if e.OwnerEmail == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memCarts) FindByID(_ context.Context, id uuid.UUID) (*cartModel.CartModel, error) {
	e, ok := m.entries[id]
	if !ok {
		return nil, fmt.Errorf("cart entry %s: %w", id, helper.ErrNotFound)
	}
	return &e, nil
}

func (m *memCarts) Create(_ context.Context, e *cartModel.CartModel) error {
	m.entries[e.ID] = *e
	return nil
}

func (m *memCarts) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.entries[id]; !ok {
		return fmt.Errorf("cart entry %s: %w", id, helper.ErrNotFound)
	}
	delete(m.entries, id)
	return nil
}

type memPayments struct {
	payments  []paymentModel.PaymentModel
	createErr error
}

func (m *memPayments) Create(_ context.Context, p *paymentModel.PaymentModel) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.payments = append(m.payments, *p)
	return nil
}

func (m *memPayments) List(context.Context) ([]paymentModel.PaymentModel, error) {
	return m.payments, nil
}

func (m *memPayments) ListByPayer(_ context.Context, email string) ([]paymentModel.PaymentModel, error) {
	var out []paymentModel.PaymentModel
	for _, p := range m.payments {
		if p.PayerEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type recordingProvider struct {
	got IntentRequest
	err error
}

func (r *recordingProvider) CreateIntent(_ context.Context, req IntentRequest) (IntentResult, error) {
	r.got = req
	if r.err != nil {
		return IntentResult{}, r.err
	}
	return IntentResult{ClientSecret: "secret-" + req.OrderID, OrderID: req.OrderID}, nil
}

/* ---------- fixture ---------- */

type fixture struct {
	classes  *memClasses
	carts    *memCarts
	payments *memPayments
	catalog  *classService.CatalogService
	cart     *cartService.CartService
	svc      *PaymentService
}

func newFixture() *fixture {
	f := &fixture{
		classes:  newMemClasses(),
		carts:    newMemCarts(),
		payments: &memPayments{},
	}
	f.catalog = classService.NewCatalogService(f.classes)
	f.cart = cartService.NewCartService(f.carts, f.catalog)
	f.svc = NewPaymentService(f.payments, f.catalog, f.carts, &recordingProvider{}, "IDR")
	return f
}

// purchase creates a class as an instructor and puts it in buyer's cart.
func (f *fixture) purchase(t *testing.T, buyer string) (*classModel.ClassModel, *cartModel.CartModel) {
	t.Helper()
	ctx := context.Background()
	class, err := f.catalog.Create(ctx, "instructor@example.com", &classModel.ClassModel{Title: "Guitar 101", Price: 150000})
	if err != nil {
		t.Fatalf("create class: %v", err)
	}
	entry, err := f.cart.Add(ctx, &cartModel.CartModel{OwnerEmail: buyer, ClassID: class.ID})
	if err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	return class, entry
}

func (f *fixture) enrolled(t *testing.T, id uuid.UUID) int {
	t.Helper()
	c, err := f.classes.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find class: %v", err)
	}
	return c.EnrolledCount
}

/* ---------- tests ---------- */

func TestSettleGuitar101(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	class, entry := f.purchase(t, "ana@example.com")
	if got := f.enrolled(t, class.ID); got != 0 {
		t.Fatalf("new class should have 0 enrolled, got %d", got)
	}

	res, err := f.svc.Settle(ctx, "ana@example.com", &paymentModel.PaymentModel{
		Amount:      150000,
		ClassID:     class.ID,
		CartEntryID: entry.ID,
	})
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if res.State != SettleStateSettled || !res.Payment.OK || !res.Enrollment.OK || !res.CartDeletion.OK {
		t.Fatalf("expected every step to succeed, got %+v", res)
	}

	if got := f.enrolled(t, class.ID); got != 1 {
		t.Fatalf("expected 1 enrolled, got %d", got)
	}
	if _, err := f.carts.FindByID(ctx, entry.ID); !errors.Is(err, helper.ErrNotFound) {
		t.Fatalf("expected cart entry to be gone, got %v", err)
	}
	if len(f.payments.payments) != 1 {
		t.Fatalf("expected exactly one payment, got %d", len(f.payments.payments))
	}
	p := f.payments.payments[0]
	if p.ClassID != class.ID || p.ID != res.PaymentID || p.PayerEmail != "ana@example.com" {
		t.Fatalf("payment does not reference the purchase: %+v", p)
	}
}

func TestSettleStepOneFailureTouchesNothing(t *testing.T) {
	f := newFixture()
	class, entry := f.purchase(t, "ana@example.com")
	f.payments.createErr = fmt.Errorf("insert payment: boom: %w", helper.ErrWrite)

	res, err := f.svc.Settle(context.Background(), "ana@example.com", &paymentModel.PaymentModel{
		Amount:      150000,
		ClassID:     class.ID,
		CartEntryID: entry.ID,
	})
	if !errors.Is(err, helper.ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected no result, got %+v", res)
	}
	if got := f.enrolled(t, class.ID); got != 0 {
		t.Fatalf("enrollment must not change, got %d", got)
	}
	if _, err := f.carts.FindByID(context.Background(), entry.ID); err != nil {
		t.Fatalf("cart entry must still exist: %v", err)
	}
}

func TestSettlePartialFailure(t *testing.T) {
	tests := []struct {
		name          string
		enrollErr     error
		deleteErr     error
		wantEnrolled  int
		wantCartEntry bool
	}{
		{"enrollment fails", errors.New("update failed"), nil, 0, false},
		{"cart deletion fails", nil, errors.New("delete failed"), 1, true},
		{"both fail", errors.New("update failed"), errors.New("delete failed"), 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			class, entry := f.purchase(t, "ana@example.com")
			f.classes.incErr = tc.enrollErr
			f.carts.deleteErr = tc.deleteErr

			res, err := f.svc.Settle(context.Background(), "ana@example.com", &paymentModel.PaymentModel{
				Amount:      150000,
				ClassID:     class.ID,
				CartEntryID: entry.ID,
			})
			if !errors.Is(err, helper.ErrPartialFailure) {
				t.Fatalf("expected ErrPartialFailure, got %v", err)
			}
			if res == nil || res.State != SettleStatePartial {
				t.Fatalf("expected partial result, got %+v", res)
			}
			if !res.Payment.OK {
				t.Fatal("payment step should be reported as done")
			}
			if res.Enrollment.OK != (tc.enrollErr == nil) || res.CartDeletion.OK != (tc.deleteErr == nil) {
				t.Fatalf("step outcomes do not match: %+v", res)
			}
			if len(f.payments.payments) != 1 {
				t.Fatalf("payment record must be kept, got %d", len(f.payments.payments))
			}

			f.classes.incErr = nil
			if got := f.enrolled(t, class.ID); got != tc.wantEnrolled {
				t.Fatalf("expected %d enrolled, got %d", tc.wantEnrolled, got)
			}
			_, findErr := f.carts.FindByID(context.Background(), entry.ID)
			if (findErr == nil) != tc.wantCartEntry {
				t.Fatalf("cart entry presence = %v, want %v", findErr == nil, tc.wantCartEntry)
			}
		})
	}
}

// The enrolled class and the removed cart entry must be the same purchase.
func TestSettleRejectsMismatchedPurchase(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	class, entry := f.purchase(t, "ana@example.com")
	other, otherEntry := f.purchase(t, "bob@example.com")

	tests := []struct {
		name    string
		caller  string
		payment paymentModel.PaymentModel
		wantErr error
	}{
		{"cart entry of another class", "ana@example.com",
			paymentModel.PaymentModel{ClassID: other.ID, CartEntryID: entry.ID}, helper.ErrBadRequest},
		{"cart entry of another payer", "ana@example.com",
			paymentModel.PaymentModel{ClassID: other.ID, CartEntryID: otherEntry.ID}, helper.ErrBadRequest},
		{"paying for someone else", "ana@example.com",
			paymentModel.PaymentModel{PayerEmail: "bob@example.com", ClassID: other.ID, CartEntryID: otherEntry.ID}, helper.ErrForbidden},
		{"unknown cart entry", "ana@example.com",
			paymentModel.PaymentModel{ClassID: class.ID, CartEntryID: uuid.New()}, helper.ErrNotFound},
		{"missing ids", "ana@example.com",
			paymentModel.PaymentModel{}, helper.ErrBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.payment
			if _, err := f.svc.Settle(ctx, tc.caller, &p); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if len(f.payments.payments) != 0 {
		t.Fatalf("no payment may be written, got %d", len(f.payments.payments))
	}
	if f.enrolled(t, class.ID) != 0 || f.enrolled(t, other.ID) != 0 {
		t.Fatal("no enrollment may change")
	}
}

func TestCreateIntentUsesMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{150000, 15000000},
		{19.99, 1999},
		{0.1, 10},
		{1.005, 100},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.price), func(t *testing.T) {
			provider := &recordingProvider{}
			svc := NewPaymentService(&memPayments{}, newMemClasses(), newMemCarts(), provider, "idr")

			res, err := svc.CreateIntent(context.Background(), tc.price, "Ana@Example.com")
			if err != nil {
				t.Fatalf("create intent: %v", err)
			}
			if provider.got.AmountMinor != tc.want {
				t.Fatalf("expected %d minor units, got %d", tc.want, provider.got.AmountMinor)
			}
			if provider.got.Currency != "IDR" || provider.got.Email != "ana@example.com" {
				t.Fatalf("unexpected request %+v", provider.got)
			}
			if res.ClientSecret == "" || res.OrderID != provider.got.OrderID {
				t.Fatalf("unexpected result %+v", res)
			}
		})
	}
}

func TestCreateIntentErrors(t *testing.T) {
	ctx := context.Background()

	svc := NewPaymentService(&memPayments{}, newMemClasses(), newMemCarts(), &recordingProvider{}, "")
	for _, price := range []float64{0, -5, math.NaN(), math.Inf(1), MaxIntentPrice + 1, 1e18} {
		if _, err := svc.CreateIntent(ctx, price, "ana@example.com"); !errors.Is(err, helper.ErrBadRequest) {
			t.Fatalf("price %v: expected ErrBadRequest, got %v", price, err)
		}
	}

	top := &recordingProvider{}
	svc = NewPaymentService(&memPayments{}, newMemClasses(), newMemCarts(), top, "")
	if _, err := svc.CreateIntent(ctx, MaxIntentPrice, "ana@example.com"); err != nil {
		t.Fatalf("max price: %v", err)
	}
	if top.got.AmountMinor != int64(MaxIntentPrice)*100 {
		t.Fatalf("expected %d minor units, got %d", int64(MaxIntentPrice)*100, top.got.AmountMinor)
	}

	failing := &recordingProvider{err: fmt.Errorf("declined: %w", helper.ErrProvider)}
	svc = NewPaymentService(&memPayments{}, newMemClasses(), newMemCarts(), failing, "")
	if _, err := svc.CreateIntent(ctx, 10, "ana@example.com"); !errors.Is(err, helper.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}

	svc = NewPaymentService(&memPayments{}, newMemClasses(), newMemCarts(), nil, "")
	if _, err := svc.CreateIntent(ctx, 10, "ana@example.com"); !errors.Is(err, helper.ErrProvider) {
		t.Fatalf("expected ErrProvider without provider, got %v", err)
	}
}

func TestListPaymentsForUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	class, entry := f.purchase(t, "ana@example.com")
	if _, err := f.svc.Settle(ctx, "ana@example.com", &paymentModel.PaymentModel{ClassID: class.ID, CartEntryID: entry.ID}); err != nil {
		t.Fatalf("settle: %v", err)
	}

	got, err := f.svc.ListPaymentsForUser(ctx, "ana@example.com", "")
	if err != nil || len(got) != 1 {
		t.Fatalf("expected own history, got %v (err %v)", got, err)
	}
	if _, err := f.svc.ListPaymentsForUser(ctx, "bob@example.com", "ana@example.com"); !errors.Is(err, helper.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
