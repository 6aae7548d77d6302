package checkout

import (
	"errors"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError is the user-facing reason a step was refused.
type ValidationError struct {
	Step    Step
	Field   string
	Key     MessageKey
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type CountryClass int

const (
	CountryOther CountryClass = iota
	CountryPrimary
	CountrySecondary
)

const (
	primaryNationalIDDigits      = 11
	secondaryMinNationalIDDigits = 7
)

// Countries names the primary and secondary countries of the deployment.
type Countries struct {
	Primary   string
	Secondary string
}

func (c Countries) Classify(country string) CountryClass {
	switch {
	case country != "" && strings.EqualFold(country, c.Primary):
		return CountryPrimary
	case country != "" && strings.EqualFold(country, c.Secondary):
		return CountrySecondary
	default:
		return CountryOther
	}
}

// StepContext carries the order-wide facts a step's rules depend on.
type StepContext struct {
	Step           Step
	Ticket         SelectedTicket
	HasShirtOption bool
	IsFreeOrder    bool
	PaymentMethod  PaymentMethod
	Locale         Locale
}

type ValidationGate struct {
	countries Countries
}

func NewValidationGate(countries Countries) *ValidationGate {
	return &ValidationGate{countries: countries}
}

// Validate returns nil or a *ValidationError for the first failing field.
// The participant's CountryOfResidence selects the country rules.
func (g *ValidationGate) Validate(p Participant, sc StepContext) error {
	var key MessageKey
	var field string

	switch sc.Step {
	case StepIdentity:
		field, key = g.identity(p)
	case StepAddress:
		field, key = g.address(p)
	case StepLogistics:
		field, key = g.logistics(p, sc)
	}

	if key == "" {
		return nil
	}
	return &ValidationError{
		Step:    sc.Step,
		Field:   field,
		Key:     key,
		Message: Message(sc.Locale, key),
	}
}

// ValidateThrough runs every step up to and including sc.Step, so a later
// step cannot leave an earlier one invalid (a new country re-checks the id).
func (g *ValidationGate) ValidateThrough(p Participant, sc StepContext) error {
	for step := StepIdentity; step <= sc.Step; step++ {
		c := sc
		c.Step = step
		if err := g.Validate(p, c); err != nil {
			return err
		}
	}
	return nil
}

func (g *ValidationGate) identity(p Participant) (string, MessageKey) {
	switch {
	case blank(p.Name):
		return "name", MsgNameRequired
	case !strings.Contains(p.Email, "@"):
		return "email", MsgEmailInvalid
	case blank(p.Phone):
		return "phone", MsgPhoneRequired
	case p.Age <= 0:
		return "age", MsgAgeRequired
	case blank(p.Gender):
		return "gender", MsgGenderRequired
	case blank(p.NationalID):
		return "nationalId", MsgNationalIDRequired
	}

	switch g.countries.Classify(p.CountryOfResidence) {
	case CountryPrimary:
		if n, ok := countDigits(p.NationalID); !ok || n != primaryNationalIDDigits {
			return "nationalId", MsgNationalIDPrimary
		}
	case CountrySecondary:
		if n, ok := countDigits(p.NationalID); !ok || n < secondaryMinNationalIDDigits {
			return "nationalId", MsgNationalIDSecondary
		}
	case CountryOther:
	}
	return "", ""
}

func (g *ValidationGate) address(p Participant) (string, MessageKey) {
	switch {
	case blank(p.CountryOfResidence):
		return "countryOfResidence", MsgCountryRequired
	case g.countries.Classify(p.CountryOfResidence) == CountryPrimary && blank(p.Address.PostalCode):
		return "address.postalCode", MsgPostalCodeRequired
	case blank(p.Address.Street):
		return "address.street", MsgStreetRequired
	case blank(p.Address.Number):
		return "address.number", MsgNumberRequired
	case blank(p.Address.City):
		return "address.city", MsgCityRequired
	}
	return "", ""
}

func (g *ValidationGate) logistics(p Participant, sc StepContext) (string, MessageKey) {
	switch {
	case sc.HasShirtOption && blank(p.ShirtSize):
		return "shirtSize", MsgShirtSizeRequired
	case !blank(p.ShirtSize) && !sc.Ticket.AllowsShirtSize(p.ShirtSize):
		return "shirtSize", MsgShirtSizeUnavailable
	case blank(p.Emergency.Name):
		return "emergency.name", MsgEmergencyNameRequired
	case blank(p.Emergency.Phone):
		return "emergency.phone", MsgEmergencyPhoneRequired
	case !p.Waiver.Accepted:
		return "waiver.accepted", MsgWaiverRequired
	case !sc.IsFreeOrder && !sc.PaymentMethod.IsValid():
		return "paymentMethod", MsgPaymentMethodRequired
	}
	return "", ""
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// countDigits counts the digits of a national id, ignoring the usual
// separators. ok is false when any other character is present.
func countDigits(id string) (int, bool) {
	n := 0
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9':
			n++
		case r == '.' || r == '-' || r == '/' || r == ' ':
		default:
			return n, false
		}
	}
	return n, true
}
