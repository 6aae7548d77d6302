package notification

import (
	"event-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

// Payload is the confirmation as published and rendered: amounts are
// formatted decimals and the event start is split into date and time.
type Payload struct {
	CheckoutID   uuid.UUID            `json:"checkoutId"`
	Locale       string               `json:"locale"`
	Event        EventPayload         `json:"event"`
	Participants []ParticipantPayload `json:"participants"`
	Financial    FinancialPayload     `json:"financial"`
}

type EventPayload struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
}

type ParticipantPayload struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	Category           string `json:"category"`
	Value              string `json:"value"`
	IsFree             bool   `json:"isFree"`
	RegistrationNumber string `json:"registrationNumber"`
}

type FinancialPayload struct {
	Subtotal string `json:"subtotal"`
	Fee      string `json:"fee"`
	Total    string `json:"total"`
}

func NewPayload(c commands.Confirmation) Payload {
	participants := make([]ParticipantPayload, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = ParticipantPayload{
			Email:              p.Email,
			Name:               p.Name,
			Category:           p.Category,
			Value:              p.Value.String(),
			IsFree:             p.IsFree,
			RegistrationNumber: p.RegistrationNumber,
		}
	}

	return Payload{
		CheckoutID: c.CheckoutID,
		Locale:     string(c.Locale),
		Event: EventPayload{
			ID:       c.Event.ID,
			Name:     c.Event.Name,
			Date:     c.Event.StartsAt.Format(dateLayout),
			Time:     c.Event.StartsAt.Format(timeLayout),
			Location: c.Event.Location,
		},
		Participants: participants,
		Financial: FinancialPayload{
			Subtotal: c.Subtotal.String(),
			Fee:      c.Fee.String(),
			Total:    c.Total.String(),
		},
	}
}
