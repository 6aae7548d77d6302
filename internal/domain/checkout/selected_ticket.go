package checkout

import (
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"

	"event-checkout/internal/domain/catalog"
	"event-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection    = errors.New("ticket selection is empty")
	ErrInvalidSelection  = errors.New("ticket selection is malformed")
	ErrInvalidQuantity   = errors.New("ticket selection quantity must be positive")
	ErrInsufficientStock = errors.New("not enough tickets left for selection")
)

// SelectedTicket is copied from the offer when the wizard starts and never
// changes afterwards, even if the offer does.
type SelectedTicket struct {
	TicketID   uuid.UUID         `json:"ticketId"`
	Category   string            `json:"category"`
	UnitCents  int64             `json:"unitCents"`
	Free       bool              `json:"free"`
	HasKit     bool              `json:"hasKit"`
	Apparel    bool              `json:"apparel"`
	KitItems   []catalog.KitItem `json:"kitItems,omitempty"`
	ShirtSizes []string          `json:"shirtSizes,omitempty"`
}

func NewSelectedTicket(t *catalog.Ticket) SelectedTicket {
	return SelectedTicket{
		TicketID:   t.ID(),
		Category:   t.Category(),
		UnitCents:  t.PriceCents(),
		Free:       t.IsFree(),
		HasKit:     t.HasKit(),
		Apparel:    t.IncludesApparel(),
		KitItems:   t.KitItems(),
		ShirtSizes: t.ShirtSizes(),
	}
}

func (s SelectedTicket) Line() pricing.Line {
	return pricing.Line{UnitCents: s.UnitCents, Free: s.Free}
}

func (s SelectedTicket) AllowsShirtSize(size string) bool {
	if len(s.ShirtSizes) == 0 {
		return true
	}
	for _, allowed := range s.ShirtSizes {
		if strings.EqualFold(allowed, size) {
			return true
		}
	}
	return false
}

// Selection is the handoff from the ticket page: quantity per category.
type Selection map[string]int

// ParseSelection accepts the JSON object either raw or URL-encoded.
func ParseSelection(raw string) (Selection, error) {
	raw = strings.TrimSpace(raw)
	if decoded, err := url.QueryUnescape(raw); err == nil {
		raw = decoded
	}
	var sel Selection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return nil, ErrInvalidSelection
	}
	return sel, nil
}

func (s Selection) Total() int {
	n := 0
	for _, q := range s {
		n += q
	}
	return n
}

// Expand turns the selection into one SelectedTicket per unit, categories in
// lexical order so slot numbering is stable.
func (s Selection) Expand(batch *catalog.Batch) ([]SelectedTicket, error) {
	if len(s) == 0 {
		return nil, ErrEmptySelection
	}

	categories := make([]string, 0, len(s))
	for c := range s {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var out []SelectedTicket
	for _, category := range categories {
		qty := s[category]
		if qty <= 0 {
			return nil, ErrInvalidQuantity
		}
		t, err := batch.TicketByCategory(category)
		if err != nil {
			return nil, err
		}
		stock := t.Quantity()
		if !stock.IsUnlimited() && stock.Remaining() < qty {
			return nil, ErrInsufficientStock
		}
		selected := NewSelectedTicket(t)
		for i := 0; i < qty; i++ {
			out = append(out, selected)
		}
	}
	return out, nil
}
