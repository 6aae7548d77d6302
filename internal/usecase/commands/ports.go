package commands

import (
	"context"
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/identity"
	"event-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errs.New("checkout session not found")
	// ErrIdentityAlreadyExists is how an IdentityProvisioner reports that
	// another session created the identity first.
	ErrIdentityAlreadyExists = errs.New("identity already exists")
	ErrSessionBusy           = errs.New("checkout session is being submitted")
)

// SessionStore keeps wizard state between requests.
type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*checkout.State, error)
	Save(ctx context.Context, s *checkout.State) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Lock guards a session against concurrent submission. ErrSessionBusy
	// when another holder has it.
	Lock(ctx context.Context, id uuid.UUID) (unlock func(), err error)
}

// IdentityDirectory is the local identity table.
type IdentityDirectory interface {
	FindByEmail(ctx context.Context, email string) (*identity.Identity, error)
	// Upsert mirrors an identity created by the provider.
	Upsert(ctx context.Context, externalID, email, name string, profile identity.Profile) (uuid.UUID, error)
	CreateMinimal(ctx context.Context, email, name string) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, profile identity.Profile) error
}

type ProvisionRequest struct {
	Email   string
	Name    string
	Role    string
	Profile identity.Profile
}

// IdentityProvisioner creates identities in the external identity service.
type IdentityProvisioner interface {
	Provision(ctx context.Context, req ProvisionRequest) (externalID string, err error)
}

type SavedProfileReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]identity.SavedProfile, error)
	HasAny(ctx context.Context, ownerID uuid.UUID) (bool, error)
}

// ErrorReport is one failure sent to the error log.
type ErrorReport struct {
	Operation  string
	Message    string
	StackLines []string
	Context    map[string]any
	OccurredAt time.Time
}

type ErrorReporter interface {
	Report(ctx context.Context, r ErrorReport)
}
