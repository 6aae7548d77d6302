//go:build unit || e2e

package builder

import (
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

type StateBuilder struct {
	EventID          uuid.UUID
	BatchID          uuid.UUID
	Locale           checkout.Locale
	Tickets          []checkout.SelectedTicket
	Rule             *pricing.GroupDiscountRule
	OwnerID          *uuid.UUID
	HasSavedProfiles bool
	Now              time.Time
}

func NewStateBuilder() *StateBuilder {
	return &StateBuilder{
		EventID: uuid.New(),
		BatchID: uuid.New(),
		Locale:  checkout.LocalePT,
		Tickets: []checkout.SelectedTicket{NewTicketBuilder().BuildSelected()},
		Now:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *StateBuilder) WithTickets(tickets ...checkout.SelectedTicket) *StateBuilder {
	b.Tickets = tickets
	return b
}

func (b *StateBuilder) WithRule(rule *pricing.GroupDiscountRule) *StateBuilder {
	b.Rule = rule
	return b
}

func (b *StateBuilder) WithSavedProfilesOwner(ownerID uuid.UUID) *StateBuilder {
	b.OwnerID = &ownerID
	b.HasSavedProfiles = true
	return b
}

func (b *StateBuilder) Build() *checkout.State {
	s, err := checkout.NewState(uuid.New(), b.EventID, b.BatchID, b.Locale, "BR", b.Tickets, b.Rule, b.OwnerID, b.HasSavedProfiles, b.Now)
	if err != nil {
		panic(err)
	}
	return s
}

// BuildReady walks every participant through all steps with valid data.
func (b *StateBuilder) BuildReady(participants ...checkout.Participant) *checkout.State {
	s := b.Build()
	for i := range s.Participants {
		s.Participants[i] = NewParticipantBuilder().Build()
		if i < len(participants) {
			s.Participants[i] = participants[i]
		}
	}
	s.PaymentMethod = checkout.PaymentPix
	s.ParticipantIndex = len(s.Participants) - 1
	s.Step = checkout.StepLogistics
	s.Phase = checkout.PhaseReady
	return s
}
