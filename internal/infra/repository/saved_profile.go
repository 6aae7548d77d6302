package repository

import (
	"context"
	"encoding/json"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// One saved profile per owner and participant email; a later checkout
// refreshes the stored data.
const upsertSavedProfileSQL = `
INSERT INTO saved_profiles (owner_id, email, participant)
VALUES ($1, $2, $3)
ON CONFLICT (owner_id, email)
DO UPDATE SET participant = EXCLUDED.participant, updated_at = now()`

type SavedProfileRepository struct{}

func NewSavedProfileRepository() *SavedProfileRepository {
	return &SavedProfileRepository{}
}

var _ shared.SavedProfileRepository = (*SavedProfileRepository)(nil)

func (r *SavedProfileRepository) Upsert(ctx context.Context, tx shared.DBTX, ownerID uuid.UUID, p checkout.Participant) error {
	p.Waiver = checkout.Waiver{}
	payload, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "failed to encode saved profile")
	}

	if _, err := tx.Exec(ctx, upsertSavedProfileSQL, ownerID, p.Email, payload); err != nil {
		return infra.WrapRepoErr("failed to save profile", err)
	}
	return nil
}
