package readstore

import (
	"context"
	"encoding/json"

	"event-checkout/internal/domain/identity"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listSavedProfilesSQL = `
SELECT id, owner_id, participant, created_at
FROM saved_profiles
WHERE owner_id = $1
ORDER BY created_at, id`

	hasSavedProfilesSQL = `SELECT EXISTS (SELECT 1 FROM saved_profiles WHERE owner_id = $1)`
)

type SavedProfileReadStore struct {
	db shared.DBTX
}

func NewSavedProfileReadStore(db shared.DBTX) *SavedProfileReadStore {
	return &SavedProfileReadStore{db: db}
}

var (
	_ commands.SavedProfileReader = (*SavedProfileReadStore)(nil)
	_ queries.SavedProfileLister  = (*SavedProfileReadStore)(nil)
)

func (s *SavedProfileReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]identity.SavedProfile, error) {
	rows, err := s.db.Query(ctx, listSavedProfilesSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list saved profiles", err)
	}

	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (identity.SavedProfile, error) {
		var (
			sp      identity.SavedProfile
			payload []byte
		)
		if err := row.Scan(&sp.ID, &sp.OwnerID, &payload, &sp.CreatedAt); err != nil {
			return sp, err
		}
		if err := json.Unmarshal(payload, &sp.Participant); err != nil {
			return sp, errs.Wrapf(err, "failed to decode saved profile %s", sp.ID)
		}
		return sp, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan saved profiles", err)
	}
	return profiles, nil
}

func (s *SavedProfileReadStore) HasAny(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, hasSavedProfilesSQL, ownerID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check saved profiles", err)
	}
	return exists, nil
}
