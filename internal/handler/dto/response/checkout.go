package response

import (
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
	TicketID   uuid.UUID `json:"ticket_id"`
	Category   string    `json:"category"`
	Price      string    `json:"price"`
	Free       bool      `json:"free"`
	HasKit     bool      `json:"has_kit"`
	ShirtSizes []string  `json:"shirt_sizes,omitempty"`
}

// ParticipantResponse omits the waiver capture metadata.
type ParticipantResponse struct {
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	NationalID         string           `json:"national_id"`
	Age                int              `json:"age"`
	Gender             string           `json:"gender"`
	CountryOfResidence string           `json:"country_of_residence"`
	Address            checkout.Address `json:"address"`
	ShirtSize          string           `json:"shirt_size,omitempty"`
	EmergencyName      string           `json:"emergency_name"`
	EmergencyPhone     string           `json:"emergency_phone"`
	WaiverAccepted     bool             `json:"waiver_accepted"`
}

type TotalsResponse struct {
	Subtotal           string `json:"subtotal"`
	Discount           string `json:"discount"`
	DiscountedSubtotal string `json:"discounted_subtotal"`
	Fee                string `json:"fee"`
	Total              string `json:"total"`
	IsFree             bool   `json:"is_free"`
	ParticipantCount   int    `json:"participant_count"`
}

type GroupDiscountResponse struct {
	Code             string  `json:"code"`
	EffectivePercent float64 `json:"effective_percent"`
}

type CheckoutResponse struct {
	ID                    uuid.UUID              `json:"id"`
	EventID               uuid.UUID              `json:"event_id"`
	BatchID               uuid.UUID              `json:"batch_id"`
	Locale                string                 `json:"locale"`
	Phase                 string                 `json:"phase"`
	ParticipantIndex      int                    `json:"participant_index"`
	Step                  int                    `json:"step"`
	Participants          []ParticipantResponse  `json:"participants"`
	Tickets               []TicketResponse       `json:"tickets"`
	PaymentMethod         string                 `json:"payment_method,omitempty"`
	GroupDiscount         *GroupDiscountResponse `json:"group_discount,omitempty"`
	OwnerHasSavedProfiles bool                   `json:"owner_has_saved_profiles"`
	ShowShirtSize         bool                   `json:"show_shirt_size"`
	Totals                TotalsResponse         `json:"totals"`
	CanSubmit             bool                   `json:"can_submit"`
	CreatedAt             time.Time              `json:"created_at"`
}

type AdvanceResponse struct {
	Outcome  string           `json:"outcome"`
	Checkout CheckoutResponse `json:"checkout"`
}

type ConfirmedParticipantResponse struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Category           string `json:"category"`
	Value              string `json:"value"`
	IsFree             bool   `json:"is_free"`
	RegistrationNumber string `json:"registration_number"`
}

type SubmitResponse struct {
	CheckoutID   uuid.UUID                      `json:"checkout_id"`
	EventName    string                         `json:"event_name"`
	StartsAt     time.Time                      `json:"starts_at"`
	Location     string                         `json:"location"`
	Participants []ConfirmedParticipantResponse `json:"participants"`
	Subtotal     string                         `json:"subtotal"`
	Fee          string                         `json:"fee"`
	Total        string                         `json:"total"`
	RedirectURL  string                         `json:"redirect_url"`
}

func FromCheckoutView(v *queries.CheckoutView) CheckoutResponse {
	s := v.State

	participants := make([]ParticipantResponse, len(s.Participants))
	for i, p := range s.Participants {
		participants[i] = ParticipantResponse{
			Name:               p.Name,
			Email:              p.Email,
			Phone:              p.Phone,
			NationalID:         p.NationalID,
			Age:                p.Age,
			Gender:             p.Gender,
			CountryOfResidence: p.CountryOfResidence,
			Address:            p.Address,
			ShirtSize:          p.ShirtSize,
			EmergencyName:      p.Emergency.Name,
			EmergencyPhone:     p.Emergency.Phone,
			WaiverAccepted:     p.Waiver.Accepted,
		}
	}

	tickets := make([]TicketResponse, len(s.SelectedTickets))
	for i, t := range s.SelectedTickets {
		tickets[i] = TicketResponse{
			TicketID:   t.TicketID,
			Category:   t.Category,
			Price:      pricing.NewMoney(t.UnitCents).String(),
			Free:       t.Free,
			HasKit:     t.HasKit,
			ShirtSizes: t.ShirtSizes,
		}
	}

	var discount *GroupDiscountResponse
	if s.GroupDiscount != nil {
		discount = &GroupDiscountResponse{
			Code:             s.GroupDiscount.Code,
			EffectivePercent: s.GroupDiscount.EffectivePercent(s.ParticipantCount()),
		}
	}

	return CheckoutResponse{
		ID:                    s.ID,
		EventID:               s.EventID,
		BatchID:               s.BatchID,
		Locale:                string(s.Locale),
		Phase:                 string(s.Phase),
		ParticipantIndex:      s.ParticipantIndex,
		Step:                  int(s.Step),
		Participants:          participants,
		Tickets:               tickets,
		PaymentMethod:         string(s.PaymentMethod),
		GroupDiscount:         discount,
		OwnerHasSavedProfiles: s.OwnerHasSavedProfiles,
		ShowShirtSize:         s.HasShirtOption(),
		Totals:                fromTotals(v.Totals),
		CanSubmit:             v.CanSubmit,
		CreatedAt:             s.CreatedAt,
	}
}

func fromTotals(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:           t.Subtotal.String(),
		Discount:           t.Discount.String(),
		DiscountedSubtotal: t.DiscountedSubtotal.String(),
		Fee:                t.Fee.String(),
		Total:              t.Total.String(),
		IsFree:             t.IsFree,
		ParticipantCount:   t.ParticipantCount,
	}
}

func FromSubmitResult(r *commands.SubmitResult) SubmitResponse {
	c := r.Confirmation
	participants := make([]ConfirmedParticipantResponse, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = ConfirmedParticipantResponse{
			Name:               p.Name,
			Email:              p.Email,
			Category:           p.Category,
			Value:              p.Value.String(),
			IsFree:             p.IsFree,
			RegistrationNumber: p.RegistrationNumber,
		}
	}

	return SubmitResponse{
		CheckoutID:   c.CheckoutID,
		EventName:    c.Event.Name,
		StartsAt:     c.Event.StartsAt,
		Location:     c.Event.Location,
		Participants: participants,
		Subtotal:     c.Subtotal.String(),
		Fee:          c.Fee.String(),
		Total:        c.Total.String(),
		RedirectURL:  r.RedirectURL,
	}
}

// ValidationDetail points the form at the field that blocked the step.
type ValidationDetail struct {
	Step  int    `json:"step"`
	Field string `json:"field"`
	Code  string `json:"code"`
}

func FromValidationError(e *checkout.ValidationError) ValidationDetail {
	return ValidationDetail{Step: int(e.Step), Field: e.Field, Code: string(e.Key)}
}
