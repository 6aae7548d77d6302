//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TicketFixture is one ticket category row. Capacity nil means unlimited.
type TicketFixture struct {
	Category   string
	PriceCents int64
	Free       bool
	Capacity   *int
	Remaining  int
	ShirtSizes []string
}

type EventFixture struct {
	EventID uuid.UUID
	BatchID uuid.UUID
	Tickets map[string]uuid.UUID
}

// CreateTestEvent inserts an event in the primary country with one batch
// holding the given tickets.
func CreateTestEvent(t *testing.T, db DBLike, name string, tickets ...TicketFixture) EventFixture {
	t.Helper()
	ctx := context.Background()

	fx := EventFixture{EventID: uuid.New(), BatchID: uuid.New(), Tickets: map[string]uuid.UUID{}}

	_, err := db.Exec(ctx, `INSERT INTO events (id, name, starts_at, location, country, language)
		VALUES ($1, $2, $3, 'Parque Ibirapuera', 'BR', 'pt-BR')`,
		fx.EventID, name, time.Date(2026, 6, 14, 7, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO ticket_batches (id, event_id, name) VALUES ($1, $2, 'Lote 1')`, fx.BatchID, fx.EventID)
	require.NoError(t, err)

	for _, tk := range tickets {
		id := uuid.New()
		hasKit := len(tk.ShirtSizes) > 0
		sizes := tk.ShirtSizes
		if sizes == nil {
			sizes = []string{}
		}
		_, err = db.Exec(ctx, `INSERT INTO tickets (id, batch_id, category, price_cents, is_free, capacity, remaining, has_kit, shirt_sizes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			id, fx.BatchID, tk.Category, tk.PriceCents, tk.Free, tk.Capacity, tk.Remaining, hasKit, sizes)
		require.NoError(t, err)
		fx.Tickets[tk.Category] = id
	}

	return fx
}

func CreateTestGroupDiscount(t *testing.T, db DBLike, eventID uuid.UUID, code string, percent float64, granted, used int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO group_discounts (id, event_id, code, base_percent, allocation_granted, allocation_used)
		VALUES ($1, $2, $3, $4, $5, $6)`, id, eventID, code, percent, granted, used)
	require.NoError(t, err)
	return id
}

func CreateTestIdentity(t *testing.T, db DBLike, email, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO identities (id, email, name) VALUES ($1, $2, $3)`, id, email, name)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TicketRemaining(t *testing.T, db DBLike, ticketID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT remaining FROM tickets WHERE id = $1", ticketID).Scan(&n)
	require.NoError(t, err)
	return n
}

// SetTicketRemaining simulates stock taken by a concurrent buyer.
func SetTicketRemaining(t *testing.T, db DBLike, ticketID uuid.UUID, remaining int) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE tickets SET remaining = $2 WHERE id = $1", ticketID, remaining)
	require.NoError(t, err)
}

func GroupDiscountUsed(t *testing.T, db DBLike, id uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT allocation_used FROM group_discounts WHERE id = $1", id).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
