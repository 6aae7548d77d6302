package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyCategory  = errors.New("ticket category cannot be empty")
	ErrNegativePrice  = errors.New("ticket price cannot be negative")
	ErrTicketNotFound = errors.New("ticket category not offered in batch")
)

type KitItem struct {
	Name    string `json:"name"`
	Apparel bool   `json:"apparel"`
}

type Ticket struct {
	id         uuid.UUID
	batchID    uuid.UUID
	category   string
	priceCents int64
	free       bool
	quantity   Quantity
	hasKit     bool
	kitItems   []KitItem
	shirtSizes []string
}

func NewTicket(
	id, batchID uuid.UUID,
	category string,
	priceCents int64,
	free bool,
	quantity Quantity,
	hasKit bool,
	kitItems []KitItem,
	shirtSizes []string,
) (*Ticket, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if free {
		priceCents = 0
	}

	return &Ticket{
		id:         id,
		batchID:    batchID,
		category:   category,
		priceCents: priceCents,
		free:       free,
		quantity:   quantity,
		hasKit:     hasKit,
		kitItems:   append([]KitItem(nil), kitItems...),
		shirtSizes: append([]string(nil), shirtSizes...),
	}, nil
}

func (t *Ticket) ID() uuid.UUID       { return t.id }
func (t *Ticket) BatchID() uuid.UUID  { return t.batchID }
func (t *Ticket) Category() string    { return t.category }
func (t *Ticket) PriceCents() int64   { return t.priceCents }
func (t *Ticket) IsFree() bool        { return t.free }
func (t *Ticket) Quantity() Quantity  { return t.quantity }
func (t *Ticket) HasKit() bool        { return t.hasKit }
func (t *Ticket) KitItems() []KitItem { return append([]KitItem(nil), t.kitItems...) }
func (t *Ticket) ShirtSizes() []string {
	return append([]string(nil), t.shirtSizes...)
}

// IncludesApparel reports whether the kit ships clothing, which makes a shirt size mandatory.
func (t *Ticket) IncludesApparel() bool {
	if !t.hasKit {
		return false
	}
	for _, item := range t.kitItems {
		if item.Apparel {
			return true
		}
	}
	return len(t.shirtSizes) > 0
}
