package readstore

import (
	"context"
	"encoding/json"

	"event-checkout/internal/domain/catalog"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findEventSQL = `
SELECT id, name, starts_at, location, country, language
FROM events
WHERE id = $1`

	listEventTicketsSQL = `
SELECT b.id, t.id, t.category, t.price_cents, t.is_free, t.capacity, t.remaining,
       t.has_kit, t.kit_items, t.shirt_sizes
FROM ticket_batches b
LEFT JOIN tickets t ON t.batch_id = b.id
WHERE b.event_id = $1
ORDER BY b.created_at, b.id, t.category`

	findTicketStockSQL = `
SELECT capacity, remaining
FROM tickets
WHERE id = $1`

	findGroupDiscountSQL = `
SELECT id, code, base_percent::float8, progressive_percent::float8, progressive_threshold,
       allocation_granted, allocation_used, deadline
FROM group_discounts
WHERE event_id = $1 AND code = $2`
)

type CatalogReadStore struct {
	db shared.DBTX
}

func NewCatalogReadStore(db shared.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

type eventRow struct {
	ID       uuid.UUID
	Name     string
	StartsAt pgtype.Timestamptz
	Location string
	Country  string
	Language string
}

// ticketRow is one batch joined with one of its tickets; ticket columns are
// NULL for a batch with no tickets.
type ticketRow struct {
	BatchID    uuid.UUID
	TicketID   pgtype.UUID
	Category   pgtype.Text
	PriceCents pgtype.Int8
	IsFree     pgtype.Bool
	Capacity   pgtype.Int4
	Remaining  pgtype.Int4
	HasKit     pgtype.Bool
	KitItems   []byte
	ShirtSizes []string
}

func (s *CatalogReadStore) EventByID(ctx context.Context, id uuid.UUID) (*catalog.Event, error) {
	var ev eventRow
	err := s.db.QueryRow(ctx, findEventSQL, id).Scan(&ev.ID, &ev.Name, &ev.StartsAt, &ev.Location, &ev.Country, &ev.Language)
	if err != nil {
		return nil, infra.WrapRepoErr("event not found", err)
	}

	rows, err := s.db.Query(ctx, listEventTicketsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event tickets", err)
	}
	tickets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ticketRow, error) {
		var t ticketRow
		err := row.Scan(&t.BatchID, &t.TicketID, &t.Category, &t.PriceCents, &t.IsFree,
			&t.Capacity, &t.Remaining, &t.HasKit, &t.KitItems, &t.ShirtSizes)
		return t, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan event tickets", err)
	}

	return assembleEvent(ev, tickets)
}

// assembleEvent groups joined rows into batches, keeping row order.
func assembleEvent(ev eventRow, rows []ticketRow) (*catalog.Event, error) {
	var (
		order   []uuid.UUID
		tickets = map[uuid.UUID][]*catalog.Ticket{}
	)
	for _, r := range rows {
		if _, seen := tickets[r.BatchID]; !seen {
			order = append(order, r.BatchID)
			tickets[r.BatchID] = nil
		}
		if !r.TicketID.Valid {
			continue
		}

		var kit []catalog.KitItem
		if len(r.KitItems) > 0 {
			if err := json.Unmarshal(r.KitItems, &kit); err != nil {
				return nil, errs.Wrapf(err, "failed to decode kit items of ticket %s", uuid.UUID(r.TicketID.Bytes))
			}
		}

		var capacity *int32
		if r.Capacity.Valid {
			capacity = &r.Capacity.Int32
		}
		t, err := catalog.NewTicket(
			uuid.UUID(r.TicketID.Bytes),
			r.BatchID,
			r.Category.String,
			r.PriceCents.Int64,
			r.IsFree.Bool,
			catalog.NewQuantity(capacity, r.Remaining.Int32),
			r.HasKit.Bool,
			kit,
			r.ShirtSizes,
		)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid ticket %s", uuid.UUID(r.TicketID.Bytes))
		}
		tickets[r.BatchID] = append(tickets[r.BatchID], t)
	}

	batches := make([]*catalog.Batch, len(order))
	for i, batchID := range order {
		batches[i] = catalog.NewBatch(batchID, ev.ID, tickets[batchID])
	}
	return catalog.NewEvent(ev.ID, ev.Name, ev.StartsAt.Time, ev.Location, ev.Country, ev.Language, batches), nil
}

func (s *CatalogReadStore) TicketStock(ctx context.Context, ticketID uuid.UUID) (*shared.TicketStockSnapshot, error) {
	var (
		capacity  pgtype.Int4
		remaining int32
	)
	if err := s.db.QueryRow(ctx, findTicketStockSQL, ticketID).Scan(&capacity, &remaining); err != nil {
		return nil, infra.WrapRepoErr("ticket not found", err)
	}

	var cap32 *int32
	if capacity.Valid {
		cap32 = &capacity.Int32
	}
	return &shared.TicketStockSnapshot{
		TicketID: ticketID,
		Quantity: catalog.NewQuantity(cap32, remaining),
	}, nil
}

func (s *CatalogReadStore) GroupDiscountByCode(ctx context.Context, eventID uuid.UUID, code string) (*pricing.GroupDiscountRule, error) {
	var (
		rule        pricing.GroupDiscountRule
		progressive pgtype.Float8
		threshold   pgtype.Int4
		granted     int32
		used        int32
		deadline    pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findGroupDiscountSQL, eventID, code).Scan(
		&rule.ID, &rule.Code, &rule.BasePercent, &progressive, &threshold, &granted, &used, &deadline,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("group discount not found", err)
	}

	if progressive.Valid {
		pct := progressive.Float64
		rule.ProgressivePercent = &pct
	}
	if threshold.Valid {
		n := int(threshold.Int32)
		rule.ProgressiveThreshold = &n
	}
	rule.AllocationGranted = int(granted)
	rule.AllocationUsed = int(used)
	if deadline.Valid {
		d := deadline.Time
		rule.Deadline = &d
	}
	return &rule, nil
}
