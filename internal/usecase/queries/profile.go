package queries

import (
	"context"
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/identity"

	"github.com/google/uuid"
)

type SavedProfileView struct {
	ID          uuid.UUID
	Participant checkout.Participant
	CreatedAt   time.Time
}

type SavedProfileLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]identity.SavedProfile, error)
}

type ProfileQueries interface {
	ListSaved(ctx context.Context, ownerID uuid.UUID) ([]SavedProfileView, error)
}

type profileQueriesImpl struct {
	lister SavedProfileLister
}

func NewProfileQueries(lister SavedProfileLister) ProfileQueries {
	return &profileQueriesImpl{lister: lister}
}

func (q *profileQueriesImpl) ListSaved(ctx context.Context, ownerID uuid.UUID) ([]SavedProfileView, error) {
	saved, err := q.lister.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]SavedProfileView, len(saved))
	for i, sp := range saved {
		views[i] = SavedProfileView{
			ID:          sp.ID,
			Participant: sp.ToParticipant(),
			CreatedAt:   sp.CreatedAt,
		}
	}
	return views, nil
}
