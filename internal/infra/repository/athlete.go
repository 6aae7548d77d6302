package repository

import (
	"context"
	"encoding/json"

	"event-checkout/internal/domain/registration"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/pkg/pgconv"
	"event-checkout/internal/usecase/shared"
)

const insertAthleteSQL = `
INSERT INTO athletes (
    id, registration_id, name, email, phone, national_id, age, gender,
    country_of_residence, address, shirt_size, emergency_name, emergency_phone, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

type AthleteRepository struct{}

func NewAthleteRepository() *AthleteRepository {
	return &AthleteRepository{}
}

var _ shared.AthleteRepository = (*AthleteRepository)(nil)

func (r *AthleteRepository) Create(ctx context.Context, tx shared.DBTX, a *registration.Athlete) error {
	address, err := json.Marshal(a.Address)
	if err != nil {
		return errs.Wrap(err, "failed to encode athlete address")
	}

	_, err = tx.Exec(ctx, insertAthleteSQL,
		a.ID,
		a.RegistrationID,
		a.Name,
		a.Email,
		a.Phone,
		a.NationalID,
		int32(a.Age), // #nosec G115 -- validated positive and small
		a.Gender,
		a.CountryOfResidence,
		address,
		pgconv.EmptyAsNull(a.ShirtSize),
		a.Emergency.Name,
		a.Emergency.Phone,
		pgconv.TimeToPgtype(a.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create athlete", err)
	}
	return nil
}
