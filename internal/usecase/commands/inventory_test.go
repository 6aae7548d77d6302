//go:build unit

package commands_test

import (
	"context"
	"testing"

	"event-checkout/internal/domain/catalog"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/shared"
	"event-checkout/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reserveAndCommit runs one reservation in its own transaction.
func reserveAndCommit(ctx context.Context, uow shared.UnitOfWork, inv *commands.InventoryReservation, ticketID uuid.UUID) error {
	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hold, err := inv.Reserve(ctx, tx, ticketID)
		if err != nil {
			return err
		}
		return inv.Commit(ctx, tx, hold)
	})
}

func TestInventoryReservation_FiniteStock(t *testing.T) {
	ctx := context.Background()

	for _, q := range []int{0, 1, 3, 10} {
		store := uowtest.NewStore()
		ticketID := uuid.New()
		store.Stock[ticketID] = catalog.Limited(q)
		uow := uowtest.New(store)
		inv := commands.NewInventoryReservation()

		for i := 0; i < q; i++ {
			require.NoError(t, reserveAndCommit(ctx, uow, inv, ticketID), "reservation %d of %d", i+1, q)
		}
		err := reserveAndCommit(ctx, uow, inv, ticketID)
		assert.True(t, errs.Is(err, commands.ErrInventoryExhausted), "reservation %d of %d", q+1, q)
		assert.Equal(t, 0, store.Remaining(ticketID).Remaining())
	}
}

func TestInventoryReservation_UnlimitedStock(t *testing.T) {
	ctx := context.Background()
	store := uowtest.NewStore()
	ticketID := uuid.New()
	store.Stock[ticketID] = catalog.Unlimited()
	uow := uowtest.New(store)
	inv := commands.NewInventoryReservation()

	for i := 0; i < 500; i++ {
		require.NoError(t, reserveAndCommit(ctx, uow, inv, ticketID))
	}
	assert.True(t, store.Remaining(ticketID).IsUnlimited())
}

func TestInventoryReservation_GuardedCommit(t *testing.T) {
	ctx := context.Background()
	store := uowtest.NewStore()
	ticketID := uuid.New()
	store.Stock[ticketID] = catalog.Limited(1)
	uow := uowtest.New(store)
	inv := commands.NewInventoryReservation()

	// Two holds taken in the same transaction before either commits: the
	// second commit hits the floor.
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		first, err := inv.Reserve(ctx, tx, ticketID)
		require.NoError(t, err)
		second, err := inv.Reserve(ctx, tx, ticketID)
		require.NoError(t, err)

		require.NoError(t, inv.Commit(ctx, tx, first))
		return inv.Commit(ctx, tx, second)
	})

	assert.True(t, errs.Is(err, commands.ErrInventoryExhausted))
	assert.Equal(t, 1, store.Remaining(ticketID).Remaining())
}

func TestInventoryReservation_UnknownTicket(t *testing.T) {
	ctx := context.Background()
	uow := uowtest.New(uowtest.NewStore())

	err := reserveAndCommit(ctx, uow, commands.NewInventoryReservation(), uuid.New())

	assert.True(t, errs.Is(err, commands.ErrPersistence))
}
