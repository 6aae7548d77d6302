package repository

import (
	"context"

	"event-checkout/internal/infra"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// Unlimited tickets (no positive capacity) never match, so callers must not
// decrement them.
const decrementTicketSQL = `
UPDATE tickets
SET remaining = remaining - 1
WHERE id = $1 AND capacity > 0 AND remaining > 0`

type TicketRepository struct{}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{}
}

var _ shared.TicketRepository = (*TicketRepository)(nil)

func (r *TicketRepository) DecrementRemaining(ctx context.Context, tx shared.DBTX, ticketID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, decrementTicketSQL, ticketID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to decrement ticket stock", err)
	}
	return tag.RowsAffected(), nil
}
