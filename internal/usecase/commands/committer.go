package commands

import (
	"context"
	"fmt"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/identity"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/domain/registration"
	"event-checkout/internal/pkg/clock"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/pkg/telemetry"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGroupDiscountUnavailable = errs.New("group discount unavailable")

// CommitCommand is everything needed to register one participant.
type CommitCommand struct {
	Ordinal          int
	EventID          uuid.UUID
	Participant      checkout.Participant
	Ticket           checkout.SelectedTicket
	Identity         identity.Ref
	PaymentMethod    checkout.PaymentMethod
	Rule             *pricing.GroupDiscountRule
	ParticipantCount int
	// FeeApplies mirrors the order totals: no fee once the discounted subtotal is zero.
	FeeApplies       bool
	Numbers          registration.NumberSeries
}

// CommitError tells which participant and which step failed.
type CommitError struct {
	Ordinal int
	Step    string
	Err     error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("participant %d: %s: %v", e.Ordinal, e.Step, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

type commitRun struct {
	cmd    CommitCommand
	hold   Hold
	number string
	reg    *registration.Registration
}

type commitStep struct {
	name string
	run  func(ctx context.Context, tx shared.Tx, r *commitRun) error
}

// RegistrationCommitter writes one participant as a fixed sequence of steps.
// Steps run in order and the first failure stops the participant.
type RegistrationCommitter struct {
	inventory  *InventoryReservation
	calculator *pricing.Calculator
	clock      clock.Clock
	steps      []commitStep
}

func NewRegistrationCommitter(inventory *InventoryReservation, calculator *pricing.Calculator, clk clock.Clock) *RegistrationCommitter {
	c := &RegistrationCommitter{
		inventory:  inventory,
		calculator: calculator,
		clock:      clk,
	}
	c.steps = []commitStep{
		{name: "reserve", run: c.reserve},
		{name: "number", run: c.assignNumber},
		{name: "registration", run: c.insertRegistration},
		{name: "athlete", run: c.insertAthlete},
		{name: "payment", run: c.insertPayment},
		{name: "decrement", run: c.decrement},
		{name: "group_allocation", run: c.consumeAllocation},
	}
	return c
}

func (c *RegistrationCommitter) Commit(ctx context.Context, tx shared.Tx, cmd CommitCommand) (number string, err error) {
	ctx, span := telemetry.StartSpan(ctx, "checkout.commit_participant",
		attribute.Int("checkout.participant_ordinal", cmd.Ordinal),
		attribute.String("checkout.ticket_id", cmd.Ticket.TicketID.String()),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	run := &commitRun{cmd: cmd}
	for _, step := range c.steps {
		if err := step.run(ctx, tx, run); err != nil {
			return "", &CommitError{Ordinal: cmd.Ordinal, Step: step.name, Err: err}
		}
	}
	return run.number, nil
}

func (c *RegistrationCommitter) reserve(ctx context.Context, tx shared.Tx, r *commitRun) error {
	hold, err := c.inventory.Reserve(ctx, tx, r.cmd.Ticket.TicketID)
	if err != nil {
		return err
	}
	r.hold = hold
	return nil
}

func (c *RegistrationCommitter) assignNumber(_ context.Context, _ shared.Tx, r *commitRun) error {
	r.number = r.cmd.Numbers.Number(r.cmd.Ordinal)
	return nil
}

func (c *RegistrationCommitter) insertRegistration(ctx context.Context, tx shared.Tx, r *commitRun) error {
	reg, err := registration.New(
		r.number,
		r.cmd.EventID,
		r.cmd.Ticket.TicketID,
		r.cmd.Identity.IDPtr(),
		r.cmd.Ticket.Free,
		ruleID(r.cmd.Rule),
		r.cmd.Participant,
		c.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	if err := tx.Registrations().Create(ctx, tx.DB(), reg); err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	r.reg = reg
	return nil
}

func (c *RegistrationCommitter) insertAthlete(ctx context.Context, tx shared.Tx, r *commitRun) error {
	athlete, err := registration.NewAthlete(r.reg.ID, r.cmd.Participant, c.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	if err := tx.Athletes().Create(ctx, tx.DB(), athlete); err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	return nil
}

func (c *RegistrationCommitter) insertPayment(ctx context.Context, tx shared.Tx, r *commitRun) error {
	if r.cmd.Ticket.Free {
		return nil
	}

	amount := c.calculator.PaymentAmount(r.cmd.Ticket.Line(), r.cmd.Rule, r.cmd.ParticipantCount, r.cmd.FeeApplies)
	payment := registration.NewPayment(r.reg.ID, amount, r.cmd.PaymentMethod, ruleID(r.cmd.Rule), c.clock.Now())
	if err := tx.Payments().Create(ctx, tx.DB(), payment); err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	return nil
}

func (c *RegistrationCommitter) decrement(ctx context.Context, tx shared.Tx, r *commitRun) error {
	return c.inventory.Commit(ctx, tx, r.hold)
}

func (c *RegistrationCommitter) consumeAllocation(ctx context.Context, tx shared.Tx, r *commitRun) error {
	if r.cmd.Rule == nil {
		return nil
	}

	affected, err := tx.GroupDiscounts().IncrementUsed(ctx, tx.DB(), r.cmd.Rule.ID)
	if err != nil {
		return errs.Mark(err, ErrPersistence)
	}
	if affected == 0 {
		return ErrGroupDiscountUnavailable
	}
	return nil
}

func ruleID(rule *pricing.GroupDiscountRule) *uuid.UUID {
	if rule == nil {
		return nil
	}
	id := rule.ID
	return &id
}
