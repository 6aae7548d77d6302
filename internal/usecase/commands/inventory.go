package commands

import (
	"context"

	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInventoryExhausted = errs.New("ticket inventory exhausted")
	ErrPersistence        = errs.New("persistence failure")
)

// Hold is a reservation that still has to be committed after the
// registration row exists. Unlimited tickets produce a hold that commits to
// nothing.
type Hold struct {
	ticketID uuid.UUID
	finite   bool
}

func (h Hold) TicketID() uuid.UUID { return h.ticketID }
func (h Hold) IsFinite() bool      { return h.finite }

type InventoryReservation struct{}

func NewInventoryReservation() *InventoryReservation {
	return &InventoryReservation{}
}

func (r *InventoryReservation) Reserve(ctx context.Context, tx shared.Tx, ticketID uuid.UUID) (Hold, error) {
	stock, err := tx.Reads().TicketStock(ctx, ticketID)
	if err != nil {
		return Hold{}, errs.Mark(err, ErrPersistence)
	}

	if stock.Quantity.IsUnlimited() {
		return Hold{ticketID: ticketID}, nil
	}
	if !stock.Quantity.Available() {
		return Hold{}, ErrInventoryExhausted
	}
	return Hold{ticketID: ticketID, finite: true}, nil
}

// Commit takes one unit. The floor guard lives in the UPDATE itself, so a
// concurrent session that drained the ticket since Reserve surfaces here.
func (r *InventoryReservation) Commit(ctx context.Context, tx shared.Tx, h Hold) error {
	if !h.finite {
		return nil
	}

	affected, err := tx.Tickets().DecrementRemaining(ctx, tx.DB(), h.ticketID)
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	if affected == 0 {
		return ErrInventoryExhausted
	}
	return nil
}
