package repository

import (
	"context"
	"encoding/json"

	"event-checkout/internal/domain/identity"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/pkg/pgconv"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findIdentityByEmailSQL = `
SELECT id, email, name, external_id, profile, created_at, updated_at
FROM identities
WHERE email = $1`

	upsertIdentitySQL = `
INSERT INTO identities (external_id, email, name, role, profile)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO UPDATE
SET external_id = COALESCE(identities.external_id, EXCLUDED.external_id),
    name = EXCLUDED.name,
    profile = EXCLUDED.profile,
    updated_at = now()
RETURNING id`

	// The no-op update makes RETURNING yield the existing row on conflict.
	createMinimalIdentitySQL = `
INSERT INTO identities (email, name, role)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id`

	updateIdentityProfileSQL = `
UPDATE identities
SET profile = $2, updated_at = now()
WHERE id = $1`
)

// IdentityRepository is the local identity table.
type IdentityRepository struct {
	db shared.DBTX
}

func NewIdentityRepository(db shared.DBTX) *IdentityRepository {
	return &IdentityRepository{db: db}
}

var _ commands.IdentityDirectory = (*IdentityRepository)(nil)

func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	var (
		ident      identity.Identity
		externalID pgtype.Text
		profile    []byte
	)
	err := r.db.QueryRow(ctx, findIdentityByEmailSQL, email).Scan(
		&ident.ID,
		&ident.Email,
		&ident.Name,
		&externalID,
		&profile,
		&ident.CreatedAt,
		&ident.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("identity not found by email", err)
	}

	ident.ExternalID = pgconv.StringPtrFromPgtype(externalID)
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &ident.Profile); err != nil {
			return nil, errs.Wrap(err, "failed to decode identity profile")
		}
	}
	return &ident, nil
}

func (r *IdentityRepository) Upsert(ctx context.Context, externalID, email, name string, profile identity.Profile) (uuid.UUID, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to encode identity profile")
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, upsertIdentitySQL, pgconv.EmptyAsNull(externalID), email, name, identity.RoleAthlete, payload).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert identity", err)
	}
	return id, nil
}

func (r *IdentityRepository) CreateMinimal(ctx context.Context, email, name string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, createMinimalIdentitySQL, email, name, identity.RoleAthlete).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create minimal identity", err)
	}
	return id, nil
}

func (r *IdentityRepository) UpdateProfile(ctx context.Context, id uuid.UUID, profile identity.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return errs.Wrap(err, "failed to encode identity profile")
	}

	tag, err := r.db.Exec(ctx, updateIdentityProfileSQL, id, payload)
	if err != nil {
		return infra.WrapRepoErr("failed to update identity profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "identity not found", nil)
	}
	return nil
}
