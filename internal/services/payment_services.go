package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentIntenter is the external payment collaborator: it takes an
// integer amount in cents and hands back an opaque client secret.
type PaymentIntenter interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

type PaymentService struct {
	Client   PaymentIntenter
	Currency string
}

func NewPaymentService(client PaymentIntenter, currency string) *PaymentService {
	return &PaymentService{Client: client, Currency: currency}
}

// CreateIntent forwards amount × 100 as cents and returns the client
// secret unmodified. No retries and no idempotency keys; duplicate
// protection is the collaborator's and the client's problem.
func (s *PaymentService) CreateIntent(ctx context.Context, amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	secret, err := s.Client.CreateIntent(ctx, cents, s.Currency)
	if err != nil {
		return "", fmt.Errorf("%w: payment intent rejected: %v", ErrValidation, err)
	}
	return secret, nil
}
