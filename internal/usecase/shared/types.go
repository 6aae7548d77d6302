package shared

import (
	"event-checkout/internal/domain/catalog"

	"github.com/google/uuid"
)

// TicketStockSnapshot is the inventory read taken right before reserving.
type TicketStockSnapshot struct {
	TicketID uuid.UUID
	Quantity catalog.Quantity
}
