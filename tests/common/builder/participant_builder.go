//go:build unit || e2e

package builder

import (
	"time"

	"event-checkout/internal/domain/checkout"
	reqdto "event-checkout/internal/handler/dto/request"
)

type ParticipantBuilder struct {
	p checkout.Participant
}

// NewParticipantBuilder returns a participant that passes every step for a
// resident of the primary country.
func NewParticipantBuilder() *ParticipantBuilder {
	acceptedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	return &ParticipantBuilder{p: checkout.Participant{
		Name:               "Maria Silva",
		Email:              "maria@example.com",
		Phone:              "+55 11 91234-5678",
		NationalID:         "123.456.789-09",
		Age:                34,
		Gender:             "female",
		CountryOfResidence: "BR",
		Address: checkout.Address{
			PostalCode:   "01310-100",
			Street:       "Avenida Paulista",
			Number:       "1000",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			Region:       "SP",
		},
		ShirtSize: "M",
		Emergency: checkout.EmergencyContact{Name: "João Silva", Phone: "+55 11 99876-5432"},
		Waiver: checkout.Waiver{
			Accepted:   true,
			AcceptedAt: &acceptedAt,
			IP:         "203.0.113.7",
			Device:     "desktop",
			Browser:    "Firefox",
			OS:         "Linux",
		},
	}}
}

func (b *ParticipantBuilder) With(mutate func(*checkout.Participant)) *ParticipantBuilder {
	mutate(&b.p)
	return b
}

func (b *ParticipantBuilder) WithEmail(email string) *ParticipantBuilder {
	b.p.Email = email
	return b
}

func (b *ParticipantBuilder) WithName(name string) *ParticipantBuilder {
	b.p.Name = name
	return b
}

func (b *ParticipantBuilder) Build() checkout.Participant {
	return b.p
}

// BuildAdvanceRequestDTO is the same participant as sent by the form.
func (b *ParticipantBuilder) BuildAdvanceRequestDTO() reqdto.AdvanceRequest {
	p := b.p
	return reqdto.AdvanceRequest{
		Name:               p.Name,
		Email:              p.Email,
		Phone:              p.Phone,
		NationalID:         p.NationalID,
		Age:                p.Age,
		Gender:             p.Gender,
		CountryOfResidence: p.CountryOfResidence,
		Address: reqdto.AddressRequest{
			PostalCode:   p.Address.PostalCode,
			Street:       p.Address.Street,
			Number:       p.Address.Number,
			Complement:   p.Address.Complement,
			Neighborhood: p.Address.Neighborhood,
			City:         p.Address.City,
			Region:       p.Address.Region,
		},
		ShirtSize:      p.ShirtSize,
		EmergencyName:  p.Emergency.Name,
		EmergencyPhone: p.Emergency.Phone,
		WaiverAccepted: p.Waiver.Accepted,
		PaymentMethod:  string(checkout.PaymentPix),
	}
}
