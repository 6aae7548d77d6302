package registration

import (
	"time"

	"event-checkout/internal/domain/checkout"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Athlete is the participant snapshot kept with the registration.
type Athlete struct {
	ID                 uuid.UUID
	RegistrationID     uuid.UUID
	Name               string
	Email              string
	Phone              string
	NationalID         string
	Age                int
	Gender             string
	CountryOfResidence string
	Address            checkout.Address
	ShirtSize          string
	Emergency          checkout.EmergencyContact
	CreatedAt          time.Time
}

func NewAthlete(registrationID uuid.UUID, p checkout.Participant, now time.Time) (*Athlete, error) {
	a := &Athlete{}
	if err := copier.Copy(a, &p); err != nil {
		return nil, err
	}
	a.ID = uuid.New()
	a.RegistrationID = registrationID
	a.CreatedAt = now
	return a, nil
}
