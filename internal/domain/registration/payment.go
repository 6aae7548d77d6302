package registration

import (
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

type PaymentStatus string

const PaymentPending PaymentStatus = "pending"

type Payment struct {
	ID              uuid.UUID
	RegistrationID  uuid.UUID
	Amount          pricing.Money
	Method          checkout.PaymentMethod
	Status          PaymentStatus
	GroupDiscountID *uuid.UUID
	CreatedAt       time.Time
}

func NewPayment(registrationID uuid.UUID, amount pricing.Money, method checkout.PaymentMethod, groupDiscountID *uuid.UUID, now time.Time) *Payment {
	return &Payment{
		ID:              uuid.New(),
		RegistrationID:  registrationID,
		Amount:          amount,
		Method:          method,
		Status:          PaymentPending,
		GroupDiscountID: groupDiscountID,
		CreatedAt:       now,
	}
}
