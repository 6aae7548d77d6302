package shared

import (
	"context"

	"event-checkout/internal/domain/catalog"
	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/domain/registration"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Registrations() RegistrationRepository
	Athletes() AthleteRepository
	Payments() PaymentRepository
	Tickets() TicketRepository
	GroupDiscounts() GroupDiscountRepository
	SavedProfiles() SavedProfileRepository
	Reads() CommandReads
	DB() DBTX
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*catalog.Event, error)
	TicketStock(ctx context.Context, ticketID uuid.UUID) (*TicketStockSnapshot, error)
	GroupDiscountByCode(ctx context.Context, eventID uuid.UUID, code string) (*pricing.GroupDiscountRule, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, tx DBTX, reg *registration.Registration) error
}

type AthleteRepository interface {
	Create(ctx context.Context, tx DBTX, athlete *registration.Athlete) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx DBTX, payment *registration.Payment) error
}

type TicketRepository interface {
	// DecrementRemaining returns the number of rows changed; 0 means the
	// ticket had nothing left.
	DecrementRemaining(ctx context.Context, tx DBTX, ticketID uuid.UUID) (int64, error)
}

type GroupDiscountRepository interface {
	// IncrementUsed returns 0 when the allocation is already used up.
	IncrementUsed(ctx context.Context, tx DBTX, ruleID uuid.UUID) (int64, error)
}

type SavedProfileRepository interface {
	Upsert(ctx context.Context, tx DBTX, ownerID uuid.UUID, p checkout.Participant) error
}
