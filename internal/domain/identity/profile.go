package identity

import (
	"event-checkout/internal/domain/checkout"

	"github.com/jinzhu/copier"
)

// ProfileFromParticipant keeps the fields worth pre-filling next time.
func ProfileFromParticipant(p checkout.Participant) (Profile, error) {
	var profile Profile
	if err := copier.Copy(&profile, &p); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// ToParticipant turns a saved profile back into form data. The waiver is never
// carried over.
func (s SavedProfile) ToParticipant() checkout.Participant {
	p := s.Participant
	p.Waiver = checkout.Waiver{}
	return p
}
