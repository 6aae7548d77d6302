//go:build unit || e2e

// Package uowtest is an in-memory UnitOfWork. Writes made inside Within are
// applied only when the callback returns nil.
package uowtest

import (
	"context"
	"sync"

	"event-checkout/internal/domain/catalog"
	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/domain/registration"
	"event-checkout/internal/infra"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// Failure points for Store.Fail.
const (
	FailRegistrations = "registrations"
	FailAthletes      = "athletes"
	FailPayments      = "payments"
	FailProfiles      = "saved_profiles"
)

type Store struct {
	mu sync.Mutex

	Events        map[uuid.UUID]*catalog.Event
	Stock         map[uuid.UUID]catalog.Quantity
	Rules         map[uuid.UUID]*pricing.GroupDiscountRule
	Registrations []*registration.Registration
	Athletes      []*registration.Athlete
	Payments      []*registration.Payment
	SavedProfiles map[uuid.UUID][]checkout.Participant
	Fail          map[string]error
	Attempts      int
}

func NewStore() *Store {
	return &Store{
		Events:        map[uuid.UUID]*catalog.Event{},
		Stock:         map[uuid.UUID]catalog.Quantity{},
		Rules:         map[uuid.UUID]*pricing.GroupDiscountRule{},
		SavedProfiles: map[uuid.UUID][]checkout.Participant{},
		Fail:          map[string]error{},
	}
}

// AddEvent registers the event and the stock of every ticket it offers.
func (s *Store) AddEvent(e *catalog.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events[e.ID()] = e
	for _, b := range e.Batches() {
		for _, t := range b.Tickets() {
			s.Stock[t.ID()] = t.Quantity()
		}
	}
}

func (s *Store) AddRule(r *pricing.GroupDiscountRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Rules[r.ID] = r
}

func (s *Store) Remaining(ticketID uuid.UUID) catalog.Quantity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Stock[ticketID]
}

type UoW struct {
	store *Store
}

func New(store *Store) *UoW {
	return &UoW{store: store}
}

var _ shared.UnitOfWork = (*UoW)(nil)

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	u.store.Attempts++
	u.store.mu.Unlock()

	tx := newTx(u.store)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}

func (u *UoW) CommandReads() shared.CommandReads {
	return &reads{store: u.store}
}

type tx struct {
	store *Store

	regs       []*registration.Registration
	athletes   []*registration.Athlete
	payments   []*registration.Payment
	decrements map[uuid.UUID]int
	used       map[uuid.UUID]int
	profiles   map[uuid.UUID][]checkout.Participant
}

func newTx(store *Store) *tx {
	return &tx{
		store:      store,
		decrements: map[uuid.UUID]int{},
		used:       map[uuid.UUID]int{},
		profiles:   map[uuid.UUID][]checkout.Participant{},
	}
}

func (t *tx) apply() {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Registrations = append(s.Registrations, t.regs...)
	s.Athletes = append(s.Athletes, t.athletes...)
	s.Payments = append(s.Payments, t.payments...)
	for id, n := range t.decrements {
		s.Stock[id] = catalog.Limited(s.Stock[id].Remaining() - n)
	}
	for id, n := range t.used {
		s.Rules[id].AllocationUsed += n
	}
	for owner, ps := range t.profiles {
		s.SavedProfiles[owner] = append(s.SavedProfiles[owner], ps...)
	}
}

func (t *tx) fail(point string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return t.store.Fail[point]
}

func (t *tx) Registrations() shared.RegistrationRepository   { return (*registrationRepo)(t) }
func (t *tx) Athletes() shared.AthleteRepository             { return (*athleteRepo)(t) }
func (t *tx) Payments() shared.PaymentRepository             { return (*paymentRepo)(t) }
func (t *tx) Tickets() shared.TicketRepository               { return (*ticketRepo)(t) }
func (t *tx) GroupDiscounts() shared.GroupDiscountRepository { return (*groupDiscountRepo)(t) }
func (t *tx) SavedProfiles() shared.SavedProfileRepository   { return (*savedProfileRepo)(t) }
func (t *tx) Reads() shared.CommandReads                     { return &reads{store: t.store, tx: t} }
func (t *tx) DB() shared.DBTX                                { return nil }

type registrationRepo tx

func (r *registrationRepo) Create(_ context.Context, _ shared.DBTX, reg *registration.Registration) error {
	t := (*tx)(r)
	if err := t.fail(FailRegistrations); err != nil {
		return err
	}
	t.regs = append(t.regs, reg)
	return nil
}

type athleteRepo tx

func (r *athleteRepo) Create(_ context.Context, _ shared.DBTX, a *registration.Athlete) error {
	t := (*tx)(r)
	if err := t.fail(FailAthletes); err != nil {
		return err
	}
	t.athletes = append(t.athletes, a)
	return nil
}

type paymentRepo tx

func (r *paymentRepo) Create(_ context.Context, _ shared.DBTX, p *registration.Payment) error {
	t := (*tx)(r)
	if err := t.fail(FailPayments); err != nil {
		return err
	}
	t.payments = append(t.payments, p)
	return nil
}

type ticketRepo tx

func (r *ticketRepo) DecrementRemaining(_ context.Context, _ shared.DBTX, ticketID uuid.UUID) (int64, error) {
	t := (*tx)(r)
	t.store.mu.Lock()
	q, ok := t.store.Stock[ticketID]
	t.store.mu.Unlock()

	if !ok || q.IsUnlimited() || q.Remaining()-t.decrements[ticketID] <= 0 {
		return 0, nil
	}
	t.decrements[ticketID]++
	return 1, nil
}

type groupDiscountRepo tx

func (r *groupDiscountRepo) IncrementUsed(_ context.Context, _ shared.DBTX, ruleID uuid.UUID) (int64, error) {
	t := (*tx)(r)
	t.store.mu.Lock()
	rule, ok := t.store.Rules[ruleID]
	t.store.mu.Unlock()

	if !ok || rule.AllocationUsed+t.used[ruleID] >= rule.AllocationGranted {
		return 0, nil
	}
	t.used[ruleID]++
	return 1, nil
}

type savedProfileRepo tx

func (r *savedProfileRepo) Upsert(_ context.Context, _ shared.DBTX, ownerID uuid.UUID, p checkout.Participant) error {
	t := (*tx)(r)
	if err := t.fail(FailProfiles); err != nil {
		return err
	}
	t.profiles[ownerID] = append(t.profiles[ownerID], p)
	return nil
}

type reads struct {
	store *Store
	tx    *tx
}

func notFound(what string) error {
	return infra.NewRepoErr(infra.KindNotFound, what+" not found", nil)
}

func (r *reads) EventByID(_ context.Context, id uuid.UUID) (*catalog.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.Events[id]
	if !ok {
		return nil, notFound("event")
	}
	return e, nil
}

func (r *reads) TicketStock(_ context.Context, ticketID uuid.UUID) (*shared.TicketStockSnapshot, error) {
	r.store.mu.Lock()
	q, ok := r.store.Stock[ticketID]
	r.store.mu.Unlock()
	if !ok {
		return nil, notFound("ticket")
	}
	if !q.IsUnlimited() && r.tx != nil {
		q = catalog.Limited(q.Remaining() - r.tx.decrements[ticketID])
	}
	return &shared.TicketStockSnapshot{TicketID: ticketID, Quantity: q}, nil
}

func (r *reads) GroupDiscountByCode(_ context.Context, eventID uuid.UUID, code string) (*pricing.GroupDiscountRule, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, rule := range r.store.Rules {
		if rule.Code == code {
			cp := *rule
			return &cp, nil
		}
	}
	return nil, notFound("group discount")
}
