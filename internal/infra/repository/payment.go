package repository

import (
	"context"

	"event-checkout/internal/domain/registration"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/pgconv"
	"event-checkout/internal/usecase/shared"
)

const insertPaymentSQL = `
INSERT INTO payments (id, registration_id, amount_cents, method, status, group_discount_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

var _ shared.PaymentRepository = (*PaymentRepository)(nil)

func (r *PaymentRepository) Create(ctx context.Context, tx shared.DBTX, p *registration.Payment) error {
	_, err := tx.Exec(ctx, insertPaymentSQL,
		p.ID,
		p.RegistrationID,
		p.Amount.Cents(),
		string(p.Method),
		string(p.Status),
		pgconv.UUIDPtrToPgtype(p.GroupDiscountID),
		pgconv.TimeToPgtype(p.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}
