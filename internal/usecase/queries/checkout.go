package queries

import (
	"context"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

// CheckoutView is the wizard state plus totals computed from it.
type CheckoutView struct {
	State     *checkout.State
	Totals    pricing.Totals
	CanSubmit bool
}

type SessionReader interface {
	Get(ctx context.Context, id uuid.UUID) (*checkout.State, error)
}

type CheckoutQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*CheckoutView, error)
	Present(s *checkout.State) *CheckoutView
}

type checkoutQueriesImpl struct {
	sessions   SessionReader
	calculator *pricing.Calculator
}

func NewCheckoutQueries(sessions SessionReader, calculator *pricing.Calculator) CheckoutQueries {
	return &checkoutQueriesImpl{
		sessions:   sessions,
		calculator: calculator,
	}
}

func (q *checkoutQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CheckoutView, error) {
	s, err := q.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return q.Present(s), nil
}

func (q *checkoutQueriesImpl) Present(s *checkout.State) *CheckoutView {
	return &CheckoutView{
		State:     s,
		Totals:    q.calculator.Compute(s.Lines(), s.GroupDiscount),
		CanSubmit: s.CanSubmit(),
	}
}
