package commands

import (
	"context"
	"log/slog"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/identity"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

// IdentityResolver finds or creates the identity behind a participant's email.
// It never fails: the worst outcome is identity.NoIdentity.
type IdentityResolver struct {
	directory   IdentityDirectory
	provisioner IdentityProvisioner
	group       singleflight.Group
	logger      *slog.Logger
}

func NewIdentityResolver(directory IdentityDirectory, provisioner IdentityProvisioner, logger *slog.Logger) *IdentityResolver {
	return &IdentityResolver{
		directory:   directory,
		provisioner: provisioner,
		logger:      logger,
	}
}

func (r *IdentityResolver) Resolve(ctx context.Context, p checkout.Participant) identity.Ref {
	ctx, span := telemetry.StartSpan(ctx, "checkout.resolve_identity")
	defer span.End()

	email := identity.NormalizeEmail(p.Email)
	profile, err := identity.ProfileFromParticipant(p)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to build identity profile", "error", err.Error())
	}

	// Sessions resolving the same email at the same time share one provisioning
	// call, so it must not die with the first caller's request.
	shared := context.WithoutCancel(ctx)
	v, _, _ := r.group.Do(email, func() (any, error) {
		return r.resolve(shared, email, p.Name, profile), nil
	})
	ref := v.(identity.Ref)
	span.SetAttributes(attribute.String("identity.source", string(ref.Source)))

	if ref.Source == identity.SourceExisting {
		r.pushProfile(ctx, ref, profile)
	}
	return ref
}

func (r *IdentityResolver) resolve(ctx context.Context, email, name string, profile identity.Profile) identity.Ref {
	existing, err := r.directory.FindByEmail(ctx, email)
	if err == nil {
		return identity.Ref{ID: existing.ID, Source: identity.SourceExisting}
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		r.logger.WarnContext(ctx, "identity lookup failed", "error", err.Error())
	}

	externalID, err := r.provisioner.Provision(ctx, ProvisionRequest{
		Email:   email,
		Name:    name,
		Role:    identity.RoleAthlete,
		Profile: profile,
	})
	switch {
	case err == nil:
		id, uerr := r.directory.Upsert(ctx, externalID, email, name, profile)
		if uerr == nil {
			return identity.Ref{ID: id, Source: identity.SourceProvisioned}
		}
		r.logger.WarnContext(ctx, "failed to store provisioned identity", "error", uerr.Error())

	case errs.Is(err, ErrIdentityAlreadyExists):
		existing, lerr := r.directory.FindByEmail(ctx, email)
		if lerr == nil {
			return identity.Ref{ID: existing.ID, Source: identity.SourceExisting}
		}
		r.logger.WarnContext(ctx, "identity reported as duplicate but not found locally", "error", lerr.Error())

	default:
		r.logger.WarnContext(ctx, "identity provisioning failed, falling back to minimal identity", "error", err.Error())
	}

	id, err := r.directory.CreateMinimal(ctx, email, name)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to create minimal identity", "error", err.Error())
		return identity.NoIdentity
	}
	return identity.Ref{ID: id, Source: identity.SourceMinimal}
}

func (r *IdentityResolver) pushProfile(ctx context.Context, ref identity.Ref, profile identity.Profile) {
	if err := r.directory.UpdateProfile(ctx, ref.ID, profile); err != nil {
		r.logger.WarnContext(ctx, "failed to update identity profile", "identity_id", ref.ID.String(), "error", err.Error())
	}
}
