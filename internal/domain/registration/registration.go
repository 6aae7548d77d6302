package registration

import (
	"errors"
	"time"

	"event-checkout/internal/domain/checkout"

	"github.com/google/uuid"
)

var ErrMissingTicket = errors.New("registration requires a ticket")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
)

// Registration is one participant's seat in the event. IdentityID is nil when
// identity resolution degraded to no identity.
type Registration struct {
	ID              uuid.UUID
	Number          string
	EventID         uuid.UUID
	TicketID        uuid.UUID
	IdentityID      *uuid.UUID
	Status          Status
	GroupDiscountID *uuid.UUID
	Waiver          *checkout.Waiver
	CreatedAt       time.Time
}

// New builds the row for a participant. Free tickets are confirmed right away;
// priced ones wait for payment.
func New(
	number string,
	eventID, ticketID uuid.UUID,
	identityID *uuid.UUID,
	free bool,
	groupDiscountID *uuid.UUID,
	p checkout.Participant,
	now time.Time,
) (*Registration, error) {
	if ticketID == uuid.Nil {
		return nil, ErrMissingTicket
	}

	status := StatusPending
	if free {
		status = StatusConfirmed
	}

	return &Registration{
		ID:              uuid.New(),
		Number:          number,
		EventID:         eventID,
		TicketID:        ticketID,
		IdentityID:      identityID,
		Status:          status,
		GroupDiscountID: groupDiscountID,
		Waiver:          p.WaiverCapture(),
		CreatedAt:       now,
	}, nil
}
