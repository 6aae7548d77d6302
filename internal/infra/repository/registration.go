package repository

import (
	"context"

	"event-checkout/internal/domain/registration"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/pgconv"
	"event-checkout/internal/usecase/shared"
)

const insertRegistrationSQL = `
INSERT INTO registrations (
    id, number, event_id, ticket_id, identity_id, status, group_discount_id,
    waiver_accepted, waiver_accepted_at, waiver_ip, waiver_device, waiver_browser, waiver_os,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

type RegistrationRepository struct{}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{}
}

var _ shared.RegistrationRepository = (*RegistrationRepository)(nil)

func (r *RegistrationRepository) Create(ctx context.Context, tx shared.DBTX, reg *registration.Registration) error {
	var (
		accepted                   bool
		ip, device, browser, osName string
	)
	acceptedAt := pgconv.TimePtrToPgtype(nil)
	if w := reg.Waiver; w != nil {
		accepted = w.Accepted
		acceptedAt = pgconv.TimePtrToPgtype(w.AcceptedAt)
		ip, device, browser, osName = w.IP, w.Device, w.Browser, w.OS
	}

	_, err := tx.Exec(ctx, insertRegistrationSQL,
		reg.ID,
		reg.Number,
		reg.EventID,
		reg.TicketID,
		pgconv.UUIDPtrToPgtype(reg.IdentityID),
		string(reg.Status),
		pgconv.UUIDPtrToPgtype(reg.GroupDiscountID),
		accepted,
		acceptedAt,
		pgconv.EmptyAsNull(ip),
		pgconv.EmptyAsNull(device),
		pgconv.EmptyAsNull(browser),
		pgconv.EmptyAsNull(osName),
		pgconv.TimeToPgtype(reg.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create registration", err)
	}
	return nil
}
