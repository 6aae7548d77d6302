package repository

import (
	"context"

	"event-checkout/internal/infra"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

const incrementGroupDiscountSQL = `
UPDATE group_discounts
SET allocation_used = allocation_used + 1
WHERE id = $1 AND allocation_used < allocation_granted`

type GroupDiscountRepository struct{}

func NewGroupDiscountRepository() *GroupDiscountRepository {
	return &GroupDiscountRepository{}
}

var _ shared.GroupDiscountRepository = (*GroupDiscountRepository)(nil)

func (r *GroupDiscountRepository) IncrementUsed(ctx context.Context, tx shared.DBTX, ruleID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, incrementGroupDiscountSQL, ruleID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to allocate group discount", err)
	}
	return tag.RowsAffected(), nil
}
