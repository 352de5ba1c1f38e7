package service

import (
	"context"
	"fmt"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	helper "soundwave_backend/internals/helpers"
)

// IntentRequest asks a provider to open a charge. AmountMinor is in the
// currency's minor unit (cents, sen).
type IntentRequest struct {
	OrderID     string
	AmountMinor int64
	Currency    string
	Email       string
}

type IntentResult struct {
	ClientSecret string
	RedirectURL  string
	OrderID      string
}

// Provider creates payment intents. Capturing funds happens on the provider side.
type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (IntentResult, error)
}

// MidtransProvider opens Snap transactions. Snap only charges rupiah, which
// it takes as whole units.
type MidtransProvider struct {
	client snap.Client
}

// Panggil saat bootstrap app
func InitMidtrans(serverKey string, useProd bool) *MidtransProvider {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	p := &MidtransProvider{}
	p.client.New(serverKey, env)
	return p
}

func (p *MidtransProvider) CreateIntent(_ context.Context, in IntentRequest) (IntentResult, error) {
	if !strings.EqualFold(in.Currency, "IDR") {
		return IntentResult{}, fmt.Errorf("midtrans does not charge %s: %w", in.Currency, helper.ErrProvider)
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: (in.AmountMinor + 50) / 100,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: in.Email,
		},
	}

	resp, merr := p.client.CreateTransaction(req)
	if merr != nil {
		return IntentResult{}, fmt.Errorf("midtrans: %s: %w", merr.Error(), helper.ErrProvider)
	}
	return IntentResult{
		ClientSecret: resp.Token,
		RedirectURL:  resp.RedirectURL,
		OrderID:      in.OrderID,
	}, nil
}
