//go:build unit || e2e

package builder

import (
	"event-checkout/internal/domain/catalog"
	"event-checkout/internal/domain/checkout"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	ID         uuid.UUID
	BatchID    uuid.UUID
	Category   string
	PriceCents int64
	Free       bool
	Quantity   catalog.Quantity
	HasKit     bool
	KitItems   []catalog.KitItem
	ShirtSizes []string
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		ID:         uuid.New(),
		BatchID:    uuid.New(),
		Category:   "10K",
		PriceCents: 10000,
		Quantity:   catalog.Unlimited(),
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) WithCategory(category string) *TicketBuilder {
	b.Category = category
	return b
}

func (b *TicketBuilder) WithPrice(cents int64) *TicketBuilder {
	b.PriceCents = cents
	return b
}

func (b *TicketBuilder) AsFree() *TicketBuilder {
	b.Free = true
	b.PriceCents = 0
	return b
}

func (b *TicketBuilder) WithStock(remaining int) *TicketBuilder {
	b.Quantity = catalog.Limited(remaining)
	return b
}

func (b *TicketBuilder) WithShirtKit(sizes ...string) *TicketBuilder {
	b.HasKit = true
	b.KitItems = []catalog.KitItem{{Name: "Camiseta", Apparel: true}, {Name: "Medalha"}}
	b.ShirtSizes = sizes
	return b
}

func (b *TicketBuilder) BuildDomain() *catalog.Ticket {
	t, err := catalog.NewTicket(b.ID, b.BatchID, b.Category, b.PriceCents, b.Free, b.Quantity, b.HasKit, b.KitItems, b.ShirtSizes)
	if err != nil {
		panic(err)
	}
	return t
}

func (b *TicketBuilder) BuildSelected() checkout.SelectedTicket {
	return checkout.NewSelectedTicket(b.BuildDomain())
}
