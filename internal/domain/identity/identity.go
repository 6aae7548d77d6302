package identity

import (
	"strings"
	"time"

	"event-checkout/internal/domain/checkout"

	"github.com/google/uuid"
)

// RoleAthlete tags identities provisioned from a checkout.
const RoleAthlete = "athlete"

type Source string

const (
	SourceExisting    Source = "existing"
	SourceProvisioned Source = "provisioned"
	SourceMinimal     Source = "minimal"
	SourceNone        Source = "none"
)

// Ref is the outcome of resolving a participant's identity.
type Ref struct {
	ID     uuid.UUID
	Source Source
}

// NoIdentity is returned when every resolution path failed. Registrations are
// still written, without an identity link.
var NoIdentity = Ref{Source: SourceNone}

func (r Ref) IsNone() bool {
	return r.ID == uuid.Nil
}

// IDPtr is the nullable form stored on registrations.
func (r Ref) IDPtr() *uuid.UUID {
	if r.IsNone() {
		return nil
	}
	id := r.ID
	return &id
}

// Profile is the reusable part of a participant kept on the identity so later
// checkouts can be pre-filled.
type Profile struct {
	Phone              string                    `json:"phone,omitempty"`
	NationalID         string                    `json:"nationalId,omitempty"`
	Age                int                       `json:"age,omitempty"`
	Gender             string                    `json:"gender,omitempty"`
	CountryOfResidence string                    `json:"countryOfResidence,omitempty"`
	Address            checkout.Address          `json:"address"`
	Emergency          checkout.EmergencyContact `json:"emergency"`
}

type Identity struct {
	ID         uuid.UUID
	Email      string
	Name       string
	ExternalID *string
	Profile    Profile
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NormalizeEmail trims surrounding space only. Lookups match the email exactly
// as entered otherwise.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// SavedProfile is a participant the identity registered before and can add to
// a new checkout.
type SavedProfile struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Participant checkout.Participant
	CreatedAt   time.Time
}
