package checkout

import (
	"errors"
	"time"

	"event-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

type Step int

const (
	StepIdentity  Step = 1
	StepAddress   Step = 2
	StepLogistics Step = 3

	lastStep = StepLogistics
)

type Phase string

const (
	PhaseCollecting    Phase = "collecting"
	PhaseSavedProfiles Phase = "saved_profiles"
	PhaseReady         Phase = "ready"
	PhaseSubmitted     Phase = "submitted"
)

type PaymentMethod string

const (
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentBoleto     PaymentMethod = "boleto"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentPix, PaymentCreditCard, PaymentBoleto:
		return true
	default:
		return false
	}
}

// State is the whole wizard, serializable so it can live outside the process
// between requests. Participants and SelectedTickets always have the same length.
type State struct {
	ID                    uuid.UUID                  `json:"id"`
	EventID               uuid.UUID                  `json:"eventId"`
	BatchID               uuid.UUID                  `json:"batchId"`
	Locale                Locale                     `json:"locale"`
	ParticipantIndex      int                        `json:"participantIndex"`
	Step                  Step                       `json:"step"`
	Phase                 Phase                      `json:"phase"`
	Participants          []Participant              `json:"participants"`
	SelectedTickets       []SelectedTicket           `json:"selectedTickets"`
	GroupDiscount         *pricing.GroupDiscountRule `json:"groupDiscount,omitempty"`
	PaymentMethod         PaymentMethod              `json:"paymentMethod,omitempty"`
	OwnerID               *uuid.UUID                 `json:"ownerId,omitempty"`
	OwnerHasSavedProfiles bool                       `json:"ownerHasSavedProfiles"`
	RegistrationNumbers   []string                   `json:"registrationNumbers,omitempty"`
	CreatedAt             time.Time                  `json:"createdAt"`
}

// NewState opens a wizard at (0, 1) with one blank participant per ticket.
// Each participant starts with the event country as country of residence.
func NewState(
	id, eventID, batchID uuid.UUID,
	locale Locale,
	eventCountry string,
	tickets []SelectedTicket,
	rule *pricing.GroupDiscountRule,
	ownerID *uuid.UUID,
	ownerHasSavedProfiles bool,
	now time.Time,
) (*State, error) {
	if len(tickets) == 0 {
		return nil, ErrEmptySelection
	}
	participants := make([]Participant, len(tickets))
	for i := range participants {
		participants[i].CountryOfResidence = eventCountry
	}

	return &State{
		ID:                    id,
		EventID:               eventID,
		BatchID:               batchID,
		Locale:                locale,
		ParticipantIndex:      0,
		Step:                  StepIdentity,
		Phase:                 PhaseCollecting,
		Participants:          participants,
		SelectedTickets:       append([]SelectedTicket(nil), tickets...),
		GroupDiscount:         rule,
		OwnerID:               ownerID,
		OwnerHasSavedProfiles: ownerHasSavedProfiles,
		CreatedAt:             now,
	}, nil
}

func (s *State) ParticipantCount() int {
	return len(s.SelectedTickets)
}

func (s *State) IsLastParticipant() bool {
	return s.ParticipantIndex == s.ParticipantCount()-1
}

func (s *State) Current() Participant {
	return s.Participants[s.ParticipantIndex]
}

func (s *State) CurrentTicket() SelectedTicket {
	return s.SelectedTickets[s.ParticipantIndex]
}

func (s *State) Lines() []pricing.Line {
	lines := make([]pricing.Line, len(s.SelectedTickets))
	for i, t := range s.SelectedTickets {
		lines[i] = t.Line()
	}
	return lines
}

func (s *State) IsFreeOrder() bool {
	return pricing.AllFree(s.Lines())
}

// HasShirtOption is true when any ticket in the order ships apparel.
func (s *State) HasShirtOption() bool {
	for _, t := range s.SelectedTickets {
		if t.Apparel {
			return true
		}
	}
	return false
}

func (s *State) CanSubmit() bool {
	return s.Phase == PhaseReady
}
