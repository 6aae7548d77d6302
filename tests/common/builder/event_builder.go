//go:build unit || e2e

package builder

import (
	"time"

	"event-checkout/internal/domain/catalog"

	"github.com/google/uuid"
)

type EventBuilder struct {
	ID       uuid.UUID
	BatchID  uuid.UUID
	Name     string
	StartsAt time.Time
	Location string
	Country  string
	Language string
	Tickets  []*TicketBuilder
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:       uuid.New(),
		BatchID:  uuid.New(),
		Name:     "Corrida da Serra",
		StartsAt: time.Date(2026, 6, 14, 7, 0, 0, 0, time.UTC),
		Location: "Campos do Jordão",
		Country:  "BR",
		Language: "pt-BR",
	}
}

// WithTicket adds an offer to the event's single batch.
func (b *EventBuilder) WithTicket(t *TicketBuilder) *EventBuilder {
	t.BatchID = b.BatchID
	b.Tickets = append(b.Tickets, t)
	return b
}

func (b *EventBuilder) Build() *catalog.Event {
	tickets := make([]*catalog.Ticket, len(b.Tickets))
	for i, t := range b.Tickets {
		tickets[i] = t.BuildDomain()
	}
	batch := catalog.NewBatch(b.BatchID, b.ID, tickets)
	return catalog.NewEvent(b.ID, b.Name, b.StartsAt, b.Location, b.Country, b.Language, []*catalog.Batch{batch})
}
