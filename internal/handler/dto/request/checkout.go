package request

import (
	"strings"
	"time"

	"event-checkout/internal/domain/checkout"

	"github.com/google/uuid"
)

// StartCheckoutRequest is the handoff from the event page. Tickets is the
// category-to-quantity JSON object, raw or URL-encoded.
type StartCheckoutRequest struct {
	EventID           uuid.UUID `json:"event_id" binding:"required"`
	BatchID           uuid.UUID `json:"batch_id" binding:"required"`
	Tickets           string    `json:"tickets" binding:"required"`
	GroupDiscountCode string    `json:"group_discount_code,omitempty"`
}

func (r StartCheckoutRequest) Code() string {
	return strings.ToUpper(strings.TrimSpace(r.GroupDiscountCode))
}

type AddressRequest struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
}

// AdvanceRequest carries the current participant's whole form. Fields of
// later steps may be empty.
type AdvanceRequest struct {
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone"`
	NationalID         string         `json:"national_id"`
	Age                int            `json:"age"`
	Gender             string         `json:"gender"`
	CountryOfResidence string         `json:"country_of_residence"`
	Address            AddressRequest `json:"address"`
	ShirtSize          string         `json:"shirt_size"`
	EmergencyName      string         `json:"emergency_name"`
	EmergencyPhone     string         `json:"emergency_phone"`
	WaiverAccepted     bool           `json:"waiver_accepted"`
	PaymentMethod      string         `json:"payment_method"`
}

// ToInput builds the candidate form. An accepted waiver is stamped with the
// capture time and the client that sent it.
func (r AdvanceRequest) ToInput(client ClientInfo, now time.Time) checkout.AdvanceInput {
	p := checkout.Participant{
		Name:               strings.TrimSpace(r.Name),
		Email:              strings.TrimSpace(r.Email),
		Phone:              strings.TrimSpace(r.Phone),
		NationalID:         strings.TrimSpace(r.NationalID),
		Age:                r.Age,
		Gender:             strings.TrimSpace(r.Gender),
		CountryOfResidence: strings.ToUpper(strings.TrimSpace(r.CountryOfResidence)),
		Address: checkout.Address{
			PostalCode:   strings.TrimSpace(r.Address.PostalCode),
			Street:       strings.TrimSpace(r.Address.Street),
			Number:       strings.TrimSpace(r.Address.Number),
			Complement:   strings.TrimSpace(r.Address.Complement),
			Neighborhood: strings.TrimSpace(r.Address.Neighborhood),
			City:         strings.TrimSpace(r.Address.City),
			Region:       strings.TrimSpace(r.Address.Region),
		},
		ShirtSize: strings.TrimSpace(r.ShirtSize),
		Emergency: checkout.EmergencyContact{
			Name:  strings.TrimSpace(r.EmergencyName),
			Phone: strings.TrimSpace(r.EmergencyPhone),
		},
	}
	if r.WaiverAccepted {
		at := now
		p.Waiver = checkout.Waiver{
			Accepted:   true,
			AcceptedAt: &at,
			IP:         client.IP,
			Device:     client.Device,
			Browser:    client.Browser,
			OS:         client.OS,
		}
	}

	return checkout.AdvanceInput{
		Participant:   p,
		PaymentMethod: checkout.PaymentMethod(strings.TrimSpace(r.PaymentMethod)),
	}
}

type AddSavedProfilesRequest struct {
	ProfileIDs []uuid.UUID `json:"profile_ids" binding:"required,min=1"`
}
