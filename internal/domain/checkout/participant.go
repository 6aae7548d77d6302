package checkout

import "time"

type Address struct {
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	Region       string `json:"region,omitempty"`
}

type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Waiver is the liability-waiver acceptance together with where it was captured.
type Waiver struct {
	Accepted   bool       `json:"accepted"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
	IP         string     `json:"ip,omitempty"`
	Device     string     `json:"device,omitempty"`
	Browser    string     `json:"browser,omitempty"`
	OS         string     `json:"os,omitempty"`
}

// Participant is the form data collected for one ticket slot.
// CountryOfResidence decides which national id and address rules apply.
type Participant struct {
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	NationalID         string           `json:"nationalId"`
	Age                int              `json:"age"`
	Gender             string           `json:"gender"`
	CountryOfResidence string           `json:"countryOfResidence"`
	Address            Address          `json:"address"`
	ShirtSize          string           `json:"shirtSize,omitempty"`
	Emergency          EmergencyContact `json:"emergency"`
	Waiver             Waiver           `json:"waiver"`
}

// MergeStep copies the fields owned by step from form onto p. Fields of the
// other steps keep their stored values. A country posted early is taken as
// declared; a blank one keeps the stored country.
func (p Participant) MergeStep(step Step, form Participant) Participant {
	switch step {
	case StepIdentity:
		p.Name = form.Name
		p.Email = form.Email
		p.Phone = form.Phone
		p.NationalID = form.NationalID
		p.Age = form.Age
		p.Gender = form.Gender
		if !blank(form.CountryOfResidence) {
			p.CountryOfResidence = form.CountryOfResidence
		}
	case StepAddress:
		p.CountryOfResidence = form.CountryOfResidence
		p.Address = form.Address
	case StepLogistics:
		p.ShirtSize = form.ShirtSize
		p.Emergency = form.Emergency
		p.Waiver = form.Waiver
	}
	return p
}

// WaiverCapture returns the capture metadata only when the waiver was accepted.
func (p Participant) WaiverCapture() *Waiver {
	if !p.Waiver.Accepted {
		return nil
	}
	w := p.Waiver
	return &w
}
