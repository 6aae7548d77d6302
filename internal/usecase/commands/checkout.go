package commands

import (
	"context"
	"log/slog"

	"event-checkout/internal/domain/catalog"
	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/identity"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/domain/registration"
	"event-checkout/internal/infra"
	"event-checkout/internal/pkg/clock"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/pkg/telemetry"
	"event-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEventNotFound        = errs.New("event not found")
	ErrBatchNotFound        = errs.New("ticket batch not found")
	ErrInvalidSelection     = errs.New("invalid ticket selection")
	ErrNotCheckoutOwner     = errs.New("checkout belongs to another user")
	ErrSavedProfileNotFound = errs.New("saved profile not found")
)

const maxReportedStackLines = 40

type StartCheckoutRequest struct {
	EventID           uuid.UUID
	BatchID           uuid.UUID
	Selection         checkout.Selection
	GroupDiscountCode string
	// Locale overrides the event language when set.
	Locale  string
	OwnerID *uuid.UUID
}

type SubmitResult struct {
	State        *checkout.State
	Confirmation Confirmation
	RedirectURL  string
}

type CheckoutCommands interface {
	Start(ctx context.Context, req StartCheckoutRequest) (*checkout.State, error)
	Advance(ctx context.Context, id uuid.UUID, in checkout.AdvanceInput) (*checkout.State, checkout.Outcome, error)
	Retreat(ctx context.Context, id uuid.UUID) (*checkout.State, error)
	AddSavedProfiles(ctx context.Context, id, ownerID uuid.UUID, profileIDs []uuid.UUID) (*checkout.State, error)
	SkipSavedProfiles(ctx context.Context, id uuid.UUID) (*checkout.State, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error)
}

type CheckoutSettings struct {
	Countries        checkout.Countries
	ConfirmationPath string
}

type checkoutUseCaseImpl struct {
	uow           shared.UnitOfWork
	sessions      SessionStore
	savedProfiles SavedProfileReader
	navigator     *checkout.Navigator
	calculator    *pricing.Calculator
	resolver      *IdentityResolver
	committer     *RegistrationCommitter
	notifier      Notifier
	reporter      ErrorReporter
	settings      CheckoutSettings
	clock         clock.Clock
	logger        *slog.Logger
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	sessions SessionStore,
	savedProfiles SavedProfileReader,
	navigator *checkout.Navigator,
	calculator *pricing.Calculator,
	resolver *IdentityResolver,
	committer *RegistrationCommitter,
	notifier Notifier,
	reporter ErrorReporter,
	settings CheckoutSettings,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:           uow,
		sessions:      sessions,
		savedProfiles: savedProfiles,
		navigator:     navigator,
		calculator:    calculator,
		resolver:      resolver,
		committer:     committer,
		notifier:      notifier,
		reporter:      reporter,
		settings:      settings,
		clock:         clk,
		logger:        logger,
	}
}

func (uc *checkoutUseCaseImpl) Start(ctx context.Context, req StartCheckoutRequest) (*checkout.State, error) {
	event, err := uc.loadEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	batch, ok := event.Batch(req.BatchID)
	if !ok {
		return nil, ErrBatchNotFound
	}

	tickets, err := req.Selection.Expand(batch)
	if err != nil {
		if errs.Is(err, checkout.ErrInsufficientStock) {
			return nil, errs.Mark(err, ErrInventoryExhausted)
		}
		return nil, errs.Mark(err, ErrInvalidSelection)
	}

	rule, err := uc.groupDiscount(ctx, event.ID(), req.GroupDiscountCode, len(tickets))
	if err != nil {
		return nil, err
	}

	locale := checkout.ParseLocale(event.Language())
	if req.Locale != "" {
		locale = checkout.ParseLocale(req.Locale)
	}

	hasSaved := false
	if req.OwnerID != nil {
		hasSaved, err = uc.savedProfiles.HasAny(ctx, *req.OwnerID)
		if err != nil {
			uc.logger.WarnContext(ctx, "saved profile lookup failed", "owner_id", req.OwnerID.String(), "error", err.Error())
			hasSaved = false
		}
	}

	state, err := checkout.NewState(
		uuid.New(),
		event.ID(),
		batch.ID(),
		locale,
		event.Country(),
		tickets,
		rule,
		req.OwnerID,
		hasSaved,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSelection)
	}

	if err := uc.sessions.Save(ctx, state); err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}

	uc.logger.InfoContext(ctx, "checkout started",
		"checkout_id", state.ID.String(),
		"event_id", event.ID().String(),
		"participants", state.ParticipantCount())
	return state, nil
}

func (uc *checkoutUseCaseImpl) Advance(ctx context.Context, id uuid.UUID, in checkout.AdvanceInput) (*checkout.State, checkout.Outcome, error) {
	state, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	outcome, err := uc.navigator.Advance(state, in)
	if err != nil {
		if errs.Is(err, checkout.ErrValidation) {
			uc.logger.InfoContext(ctx, "checkout step rejected",
				"checkout_id", id.String(),
				"participant_index", state.ParticipantIndex,
				"step", int(state.Step),
				"reason", err.Error())
		}
		return state, "", err
	}

	if err := uc.sessions.Save(ctx, state); err != nil {
		return nil, "", errs.Mark(err, ErrPersistence)
	}
	return state, outcome, nil
}

func (uc *checkoutUseCaseImpl) Retreat(ctx context.Context, id uuid.UUID) (*checkout.State, error) {
	return uc.mutate(ctx, id, uc.navigator.Retreat)
}

func (uc *checkoutUseCaseImpl) SkipSavedProfiles(ctx context.Context, id uuid.UUID) (*checkout.State, error) {
	return uc.mutate(ctx, id, uc.navigator.SkipSavedProfiles)
}

func (uc *checkoutUseCaseImpl) AddSavedProfiles(ctx context.Context, id, ownerID uuid.UUID, profileIDs []uuid.UUID) (*checkout.State, error) {
	state, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if state.OwnerID == nil || *state.OwnerID != ownerID {
		return nil, ErrNotCheckoutOwner
	}
	if len(profileIDs) == 0 {
		return nil, checkout.ErrNoProfilesSelected
	}

	saved, err := uc.savedProfiles.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}
	byID := make(map[uuid.UUID]identity.SavedProfile, len(saved))
	for _, sp := range saved {
		byID[sp.ID] = sp
	}

	participants := make([]checkout.Participant, 0, len(profileIDs))
	for _, pid := range profileIDs {
		sp, ok := byID[pid]
		if !ok {
			return nil, ErrSavedProfileNotFound
		}
		participants = append(participants, sp.ToParticipant())
	}

	if rule := state.GroupDiscount; rule != nil {
		if err := rule.CheckUsable(uc.clock.Now(), state.ParticipantCount()+len(participants)); err != nil {
			return nil, errs.Mark(err, ErrGroupDiscountUnavailable)
		}
	}

	if err := uc.navigator.AddSavedProfiles(state, participants); err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(ctx, state); err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}
	return state, nil
}

// Submit registers every participant. Identities are resolved first, outside
// the transaction, then all participants commit together or not at all.
func (uc *checkoutUseCaseImpl) Submit(ctx context.Context, id uuid.UUID) (result *SubmitResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "checkout.submit", attribute.String("checkout.id", id.String()))
	defer func() { telemetry.EndSpan(span, err) }()

	unlock, err := uc.sessions.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	state, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !state.CanSubmit() {
		return nil, checkout.ErrInvalidPhase
	}
	if len(state.Participants) != len(state.SelectedTickets) {
		return nil, checkout.ErrParticipantMismatch
	}

	event, err := uc.loadEvent(ctx, state.EventID)
	if err != nil {
		return nil, err
	}

	refs := make([]identity.Ref, len(state.Participants))
	for i, p := range state.Participants {
		refs[i] = uc.resolver.Resolve(ctx, p)
	}

	numbers, err := uc.commitAll(ctx, state, refs)
	if err != nil {
		return nil, uc.submissionFailed(ctx, state, err)
	}

	if err := uc.navigator.MarkSubmitted(state, numbers); err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(ctx, state); err != nil {
		// Registrations are already committed at this point.
		uc.logger.ErrorContext(ctx, "failed to persist submitted checkout", "checkout_id", id.String(), "error", err.Error())
	}

	totals := uc.calculator.Compute(state.Lines(), state.GroupDiscount)
	confirmation := uc.buildConfirmation(state, event, totals)
	uc.notifier.Dispatch(ctx, confirmation)

	uc.logger.InfoContext(ctx, "checkout submitted",
		"checkout_id", id.String(),
		"registrations", len(numbers),
		"total_cents", totals.Total.Cents(),
		"is_free", totals.IsFree)

	return &SubmitResult{
		State:        state,
		Confirmation: confirmation,
		RedirectURL:  ConfirmationURL(uc.settings.ConfirmationPath, confirmation),
	}, nil
}

func (uc *checkoutUseCaseImpl) commitAll(ctx context.Context, state *checkout.State, refs []identity.Ref) ([]string, error) {
	var numbers []string
	feeApplies := uc.calculator.Compute(state.Lines(), state.GroupDiscount).Fee.IsPositive()
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may run this more than once.
		numbers = make([]string, 0, len(state.Participants))
		series := registration.NewNumberSeries(uc.clock.Now())

		for i, p := range state.Participants {
			number, err := uc.committer.Commit(ctx, tx, CommitCommand{
				Ordinal:          i + 1,
				EventID:          state.EventID,
				Participant:      p,
				Ticket:           state.SelectedTickets[i],
				Identity:         refs[i],
				PaymentMethod:    state.PaymentMethod,
				Rule:             state.GroupDiscount,
				ParticipantCount: state.ParticipantCount(),
				FeeApplies:       feeApplies,
				Numbers:          series,
			})
			if err != nil {
				return err
			}
			numbers = append(numbers, number)
		}

		if state.OwnerID == nil {
			return nil
		}
		for _, p := range state.Participants {
			if err := tx.SavedProfiles().Upsert(ctx, tx.DB(), *state.OwnerID, p); err != nil {
				return errs.Mark(err, ErrPersistence)
			}
		}
		return nil
	})
	return numbers, err
}

func (uc *checkoutUseCaseImpl) submissionFailed(ctx context.Context, state *checkout.State, err error) error {
	if errs.Is(err, ErrInventoryExhausted) || errs.Is(err, ErrGroupDiscountUnavailable) {
		uc.logger.InfoContext(ctx, "checkout submission refused", "checkout_id", state.ID.String(), "reason", err.Error())
		return err
	}

	uc.logger.ErrorContext(ctx, "checkout submission failed", "checkout_id", state.ID.String(), "error", err.Error())
	uc.reporter.Report(ctx, ErrorReport{
		Operation:  "checkout.submit",
		Message:    err.Error(),
		StackLines: errs.ExtractStackLines(err, maxReportedStackLines),
		Context: map[string]any{
			"checkout_id":  state.ID.String(),
			"event_id":     state.EventID.String(),
			"participants": state.ParticipantCount(),
			"trace_id":     telemetry.TraceID(ctx),
		},
		OccurredAt: uc.clock.Now(),
	})
	return errs.Mark(err, ErrPersistence)
}

func (uc *checkoutUseCaseImpl) buildConfirmation(state *checkout.State, event *catalog.Event, totals pricing.Totals) Confirmation {
	participants := make([]ConfirmedParticipant, len(state.Participants))
	for i, p := range state.Participants {
		ticket := state.SelectedTickets[i]
		participants[i] = ConfirmedParticipant{
			Email:              p.Email,
			Name:               p.Name,
			Category:           ticket.Category,
			Value:              uc.calculator.UnitAmount(ticket.Line(), state.GroupDiscount, state.ParticipantCount()),
			IsFree:             ticket.Free,
			RegistrationNumber: state.RegistrationNumbers[i],
		}
	}

	return Confirmation{
		CheckoutID: state.ID,
		Locale:     state.Locale,
		Event: ConfirmedEvent{
			ID:       event.ID(),
			Name:     event.Name(),
			StartsAt: event.StartsAt(),
			Location: event.Location(),
		},
		Participants: participants,
		Subtotal:     totals.Subtotal,
		Fee:          totals.Fee,
		Total:        totals.Total,
	}
}

func (uc *checkoutUseCaseImpl) mutate(ctx context.Context, id uuid.UUID, fn func(*checkout.State) error) (*checkout.State, error) {
	state, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(ctx, state); err != nil {
		return nil, errs.Mark(err, ErrPersistence)
	}
	return state, nil
}

func (uc *checkoutUseCaseImpl) loadEvent(ctx context.Context, id uuid.UUID) (*catalog.Event, error) {
	event, err := uc.uow.CommandReads().EventByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrPersistence)
	}
	return event, nil
}

func (uc *checkoutUseCaseImpl) groupDiscount(ctx context.Context, eventID uuid.UUID, code string, participants int) (*pricing.GroupDiscountRule, error) {
	if code == "" {
		return nil, nil
	}

	rule, err := uc.uow.CommandReads().GroupDiscountByCode(ctx, eventID, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGroupDiscountUnavailable
		}
		return nil, errs.Mark(err, ErrPersistence)
	}
	if err := rule.Validate(); err != nil {
		return nil, errs.Mark(err, ErrGroupDiscountUnavailable)
	}
	if err := rule.CheckUsable(uc.clock.Now(), participants); err != nil {
		return nil, errs.Mark(err, ErrGroupDiscountUnavailable)
	}
	return rule, nil
}
