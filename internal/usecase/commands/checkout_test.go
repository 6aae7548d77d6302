//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/identity"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/pkg/clock"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
	"event-checkout/tests/common/builder"
	"event-checkout/tests/common/uowtest"
	commandsmock "event-checkout/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	store    *uowtest.Store
	event    *builder.EventBuilder
	sessions *commandsmock.MockSessionStore
	saved    *commandsmock.MockSavedProfileReader
	dir      *commandsmock.MockIdentityDirectory
	prov     *commandsmock.MockIdentityProvisioner
	notifier *commandsmock.MockNotifier
	reporter *commandsmock.MockErrorReporter
	uc       commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T, tickets ...*builder.TicketBuilder) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	eb := builder.NewEventBuilder()
	for _, tb := range tickets {
		eb.WithTicket(tb)
	}
	store := uowtest.NewStore()
	store.AddEvent(eb.Build())

	f := &checkoutFixture{
		store:    store,
		event:    eb,
		sessions: commandsmock.NewMockSessionStore(ctrl),
		saved:    commandsmock.NewMockSavedProfileReader(ctrl),
		dir:      commandsmock.NewMockIdentityDirectory(ctrl),
		prov:     commandsmock.NewMockIdentityProvisioner(ctrl),
		notifier: commandsmock.NewMockNotifier(ctrl),
		reporter: commandsmock.NewMockErrorReporter(ctrl),
	}

	countries := checkout.Countries{Primary: "BR", Secondary: "AR"}
	calc := pricing.NewCalculator(feeCents)
	clk := clock.NewMockClock(commitTime)
	f.uc = commands.NewCheckoutUseCase(
		uowtest.New(store),
		f.sessions,
		f.saved,
		checkout.NewNavigator(checkout.NewValidationGate(countries)),
		calc,
		commands.NewIdentityResolver(f.dir, f.prov, discardLogger()),
		commands.NewRegistrationCommitter(commands.NewInventoryReservation(), calc, clk),
		f.notifier,
		f.reporter,
		commands.CheckoutSettings{Countries: countries, ConfirmationPath: "/checkout/confirmation"},
		clk,
		discardLogger(),
	)
	return f
}

// readyState puts a submittable state for the fixture's event behind the session mock.
func (f *checkoutFixture) readyState(tickets ...*builder.TicketBuilder) *checkout.State {
	selected := make([]checkout.SelectedTicket, len(tickets))
	for i, tb := range tickets {
		selected[i] = tb.BuildSelected()
	}
	sb := builder.NewStateBuilder().WithTickets(selected...)
	sb.EventID = f.event.ID
	sb.BatchID = f.event.BatchID
	state := sb.BuildReady()

	f.sessions.EXPECT().Lock(gomock.Any(), state.ID).Return(func() {}, nil)
	f.sessions.EXPECT().Get(gomock.Any(), state.ID).Return(state, nil)
	return state
}

func (f *checkoutFixture) existingIdentities(n int) {
	id := uuid.New()
	f.dir.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(&identity.Identity{ID: id}, nil).Times(n)
	f.dir.EXPECT().UpdateProfile(gomock.Any(), id, gomock.Any()).Return(nil).Times(n)
}

func TestCheckoutUseCase_Start(t *testing.T) {
	t.Run("group code is attached to the new session", func(t *testing.T) {
		ticket := builder.NewTicketBuilder().WithPrice(10000)
		f := newCheckoutFixture(t, ticket)
		rule := &pricing.GroupDiscountRule{ID: uuid.New(), Code: "CLUBE", BasePercent: 10, AllocationGranted: 5}
		f.store.AddRule(rule)

		var saved *checkout.State
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *checkout.State) error {
			saved = s
			return nil
		})

		state, err := f.uc.Start(context.Background(), commands.StartCheckoutRequest{
			EventID:           f.event.ID,
			BatchID:           f.event.BatchID,
			Selection:         checkout.Selection{"10K": 2},
			GroupDiscountCode: "CLUBE",
		})

		require.NoError(t, err)
		assert.Same(t, state, saved)
		assert.Equal(t, 2, state.ParticipantCount())
		assert.Equal(t, checkout.LocalePT, state.Locale)
		assert.Equal(t, checkout.StepIdentity, state.Step)
		require.NotNil(t, state.GroupDiscount)
		assert.Equal(t, rule.ID, state.GroupDiscount.ID)
		for _, p := range state.Participants {
			assert.Equal(t, "BR", p.CountryOfResidence)
		}
	})

	t.Run("signed in owner with saved profiles", func(t *testing.T) {
		f := newCheckoutFixture(t, builder.NewTicketBuilder())
		owner := uuid.New()
		f.saved.EXPECT().HasAny(gomock.Any(), owner).Return(true, nil)
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		state, err := f.uc.Start(context.Background(), commands.StartCheckoutRequest{
			EventID:   f.event.ID,
			BatchID:   f.event.BatchID,
			Selection: checkout.Selection{"10K": 1},
			Locale:    "es-AR",
			OwnerID:   &owner,
		})

		require.NoError(t, err)
		assert.True(t, state.OwnerHasSavedProfiles)
		assert.Equal(t, checkout.LocaleES, state.Locale)
	})

	tests := []struct {
		name    string
		mutate  func(f *checkoutFixture, req *commands.StartCheckoutRequest)
		wantErr error
	}{
		{
			name:    "unknown event",
			mutate:  func(_ *checkoutFixture, req *commands.StartCheckoutRequest) { req.EventID = uuid.New() },
			wantErr: commands.ErrEventNotFound,
		},
		{
			name:    "unknown batch",
			mutate:  func(_ *checkoutFixture, req *commands.StartCheckoutRequest) { req.BatchID = uuid.New() },
			wantErr: commands.ErrBatchNotFound,
		},
		{
			name:    "more tickets than stock",
			mutate:  func(_ *checkoutFixture, req *commands.StartCheckoutRequest) { req.Selection = checkout.Selection{"10K": 4} },
			wantErr: commands.ErrInventoryExhausted,
		},
		{
			name:    "category not offered",
			mutate:  func(_ *checkoutFixture, req *commands.StartCheckoutRequest) { req.Selection = checkout.Selection{"42K": 1} },
			wantErr: commands.ErrInvalidSelection,
		},
		{
			name:    "unknown group code",
			mutate:  func(_ *checkoutFixture, req *commands.StartCheckoutRequest) { req.GroupDiscountCode = "NOPE" },
			wantErr: commands.ErrGroupDiscountUnavailable,
		},
		{
			name: "group allocation smaller than the party",
			mutate: func(f *checkoutFixture, req *commands.StartCheckoutRequest) {
				f.store.AddRule(&pricing.GroupDiscountRule{ID: uuid.New(), Code: "SMALL", BasePercent: 10, AllocationGranted: 2, AllocationUsed: 1})
				req.GroupDiscountCode = "SMALL"
				req.Selection = checkout.Selection{"10K": 2}
			},
			wantErr: commands.ErrGroupDiscountUnavailable,
		},
		{
			name: "expired group code",
			mutate: func(f *checkoutFixture, req *commands.StartCheckoutRequest) {
				deadline := commitTime.Add(-time.Hour)
				f.store.AddRule(&pricing.GroupDiscountRule{ID: uuid.New(), Code: "OLD", BasePercent: 10, AllocationGranted: 10, Deadline: &deadline})
				req.GroupDiscountCode = "OLD"
			},
			wantErr: commands.ErrGroupDiscountUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t, builder.NewTicketBuilder().WithStock(3))
			req := commands.StartCheckoutRequest{
				EventID:   f.event.ID,
				BatchID:   f.event.BatchID,
				Selection: checkout.Selection{"10K": 1},
			}
			tt.mutate(f, &req)

			state, err := f.uc.Start(context.Background(), req)

			assert.Nil(t, state)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCheckoutUseCase_Advance(t *testing.T) {
	t.Run("invalid step is not saved", func(t *testing.T) {
		f := newCheckoutFixture(t, builder.NewTicketBuilder())
		state := builder.NewStateBuilder().Build()
		f.sessions.EXPECT().Get(gomock.Any(), state.ID).Return(state, nil)

		got, outcome, err := f.uc.Advance(context.Background(), state.ID, checkout.AdvanceInput{})

		require.Error(t, err)
		assert.ErrorIs(t, err, checkout.ErrValidation)
		var verr *checkout.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, checkout.MsgNameRequired, verr.Key)
		assert.Empty(t, outcome)
		assert.Equal(t, checkout.StepIdentity, got.Step)
		assert.Empty(t, got.Participants[0].Name)
	})

	t.Run("valid step moves and is saved", func(t *testing.T) {
		f := newCheckoutFixture(t, builder.NewTicketBuilder())
		state := builder.NewStateBuilder().Build()
		f.sessions.EXPECT().Get(gomock.Any(), state.ID).Return(state, nil)
		f.sessions.EXPECT().Save(gomock.Any(), state).Return(nil)

		got, outcome, err := f.uc.Advance(context.Background(), state.ID, checkout.AdvanceInput{
			Participant: builder.NewParticipantBuilder().Build(),
		})

		require.NoError(t, err)
		assert.Equal(t, checkout.OutcomeMoved, outcome)
		assert.Equal(t, checkout.StepAddress, got.Step)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newCheckoutFixture(t)
		id := uuid.New()
		f.sessions.EXPECT().Get(gomock.Any(), id).Return(nil, commands.ErrSessionNotFound)

		_, _, err := f.uc.Advance(context.Background(), id, checkout.AdvanceInput{})

		assert.True(t, errs.Is(err, commands.ErrSessionNotFound))
	})
}

func TestCheckoutUseCase_AddSavedProfiles(t *testing.T) {
	owner := uuid.New()
	profile := identity.SavedProfile{ID: uuid.New(), OwnerID: owner, Participant: builder.NewParticipantBuilder().WithName("Bia Souza").Build()}

	t.Run("profiles join the order", func(t *testing.T) {
		f := newCheckoutFixture(t)
		state := builder.NewStateBuilder().WithSavedProfilesOwner(owner).Build()
		state.Phase = checkout.PhaseSavedProfiles
		f.sessions.EXPECT().Get(gomock.Any(), state.ID).Return(state, nil)
		f.saved.EXPECT().ListByOwner(gomock.Any(), owner).Return([]identity.SavedProfile{profile}, nil)
		f.sessions.EXPECT().Save(gomock.Any(), state).Return(nil)

		got, err := f.uc.AddSavedProfiles(context.Background(), state.ID, owner, []uuid.UUID{profile.ID})

		require.NoError(t, err)
		assert.Equal(t, 2, got.ParticipantCount())
		assert.Equal(t, "Bia Souza", got.Participants[1].Name)
		assert.False(t, got.Participants[1].Waiver.Accepted)
	})

	t.Run("another user's checkout", func(t *testing.T) {
		f := newCheckoutFixture(t)
		state := builder.NewStateBuilder().WithSavedProfilesOwner(owner).Build()
		f.sessions.EXPECT().Get(gomock.Any(), state.ID).Return(state, nil)

		_, err := f.uc.AddSavedProfiles(context.Background(), state.ID, uuid.New(), []uuid.UUID{profile.ID})

		assert.True(t, errs.Is(err, commands.ErrNotCheckoutOwner))
	})

	t.Run("unknown profile id", func(t *testing.T) {
		f := newCheckoutFixture(t)
		state := builder.NewStateBuilder().WithSavedProfilesOwner(owner).Build()
		f.sessions.EXPECT().Get(gomock.Any(), state.ID).Return(state, nil)
		f.saved.EXPECT().ListByOwner(gomock.Any(), owner).Return([]identity.SavedProfile{profile}, nil)

		_, err := f.uc.AddSavedProfiles(context.Background(), state.ID, owner, []uuid.UUID{uuid.New()})

		assert.True(t, errs.Is(err, commands.ErrSavedProfileNotFound))
	})

	t.Run("group allocation cannot cover the larger party", func(t *testing.T) {
		f := newCheckoutFixture(t)
		rule := &pricing.GroupDiscountRule{ID: uuid.New(), Code: "CLUBE", BasePercent: 10, AllocationGranted: 1}
		state := builder.NewStateBuilder().WithSavedProfilesOwner(owner).WithRule(rule).Build()
		f.sessions.EXPECT().Get(gomock.Any(), state.ID).Return(state, nil)
		f.saved.EXPECT().ListByOwner(gomock.Any(), owner).Return([]identity.SavedProfile{profile}, nil)

		_, err := f.uc.AddSavedProfiles(context.Background(), state.ID, owner, []uuid.UUID{profile.ID})

		assert.True(t, errs.Is(err, commands.ErrGroupDiscountUnavailable))
		assert.Equal(t, 1, state.ParticipantCount())
	})
}

func TestCheckoutUseCase_Submit(t *testing.T) {
	t.Run("paid and free participants are registered together", func(t *testing.T) {
		paid := builder.NewTicketBuilder().WithCategory("10K").WithPrice(5000)
		free := builder.NewTicketBuilder().WithCategory("Kids").AsFree()
		f := newCheckoutFixture(t, paid, free)
		state := f.readyState(paid, free)
		f.existingIdentities(2)

		var sent commands.Confirmation
		f.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Do(func(_ context.Context, c commands.Confirmation) {
			sent = c
		})
		f.sessions.EXPECT().Save(gomock.Any(), state).Return(nil)

		result, err := f.uc.Submit(context.Background(), state.ID)

		require.NoError(t, err)
		assert.Equal(t, checkout.PhaseSubmitted, result.State.Phase)
		require.Len(t, result.State.RegistrationNumbers, 2)

		require.Len(t, f.store.Registrations, 2)
		require.Len(t, f.store.Payments, 1)
		assert.Equal(t, int64(5500), f.store.Payments[0].Amount.Cents())

		conf := result.Confirmation
		assert.Equal(t, sent, conf)
		assert.Equal(t, int64(5000), conf.Subtotal.Cents())
		assert.Equal(t, int64(1000), conf.Fee.Cents())
		assert.Equal(t, int64(6000), conf.Total.Cents())
		require.Len(t, conf.Participants, 2)
		assert.Equal(t, int64(5000), conf.Participants[0].Value.Cents())
		assert.True(t, conf.Participants[1].IsFree)
		assert.Equal(t, result.State.RegistrationNumbers[1], conf.Participants[1].RegistrationNumber)
		assert.True(t, strings.HasPrefix(result.RedirectURL, "/checkout/confirmation?"))
		assert.Contains(t, result.RedirectURL, "total=60.00")
	})

	t.Run("owner gets the participants as saved profiles", func(t *testing.T) {
		ticket := builder.NewTicketBuilder()
		f := newCheckoutFixture(t, ticket)
		state := f.readyState(ticket)
		owner := uuid.New()
		state.OwnerID = &owner
		f.existingIdentities(1)
		f.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())
		f.sessions.EXPECT().Save(gomock.Any(), state).Return(nil)

		_, err := f.uc.Submit(context.Background(), state.ID)

		require.NoError(t, err)
		assert.Len(t, f.store.SavedProfiles[owner], 1)
	})

	t.Run("sold out leaves nothing behind and is not reported", func(t *testing.T) {
		lastOne := builder.NewTicketBuilder().WithStock(1)
		f := newCheckoutFixture(t, lastOne)
		state := f.readyState(lastOne, lastOne)
		f.existingIdentities(2)

		result, err := f.uc.Submit(context.Background(), state.ID)

		assert.Nil(t, result)
		assert.True(t, errs.Is(err, commands.ErrInventoryExhausted))
		assert.Empty(t, f.store.Registrations)
		assert.Empty(t, f.store.Payments)
		assert.Equal(t, 1, f.store.Remaining(lastOne.ID).Remaining())
		assert.Equal(t, checkout.PhaseReady, state.Phase)
	})

	t.Run("storage failure is reported", func(t *testing.T) {
		ticket := builder.NewTicketBuilder()
		f := newCheckoutFixture(t, ticket)
		state := f.readyState(ticket)
		f.existingIdentities(1)
		f.store.Fail[uowtest.FailAthletes] = errors.New("disk full")

		var report commands.ErrorReport
		f.reporter.EXPECT().Report(gomock.Any(), gomock.Any()).Do(func(_ context.Context, r commands.ErrorReport) {
			report = r
		})

		_, err := f.uc.Submit(context.Background(), state.ID)

		assert.True(t, errs.Is(err, commands.ErrPersistence))
		assert.Equal(t, "checkout.submit", report.Operation)
		assert.Contains(t, report.Message, "disk full")
		assert.Equal(t, state.ID.String(), report.Context["checkout_id"])
		assert.Equal(t, commitTime, report.OccurredAt)
		assert.Empty(t, f.store.Registrations)
	})

	t.Run("identity failures do not block registration", func(t *testing.T) {
		ticket := builder.NewTicketBuilder()
		f := newCheckoutFixture(t, ticket)
		state := f.readyState(ticket)
		f.dir.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		f.prov.EXPECT().Provision(gomock.Any(), gomock.Any()).Return("", errors.New("provider down"))
		f.dir.EXPECT().CreateMinimal(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db down"))
		f.notifier.EXPECT().Dispatch(gomock.Any(), gomock.Any())
		f.sessions.EXPECT().Save(gomock.Any(), state).Return(nil)

		_, err := f.uc.Submit(context.Background(), state.ID)

		require.NoError(t, err)
		require.Len(t, f.store.Registrations, 1)
		assert.Nil(t, f.store.Registrations[0].IdentityID)
	})

	t.Run("not ready", func(t *testing.T) {
		f := newCheckoutFixture(t)
		state := builder.NewStateBuilder().Build()
		f.sessions.EXPECT().Lock(gomock.Any(), state.ID).Return(func() {}, nil)
		f.sessions.EXPECT().Get(gomock.Any(), state.ID).Return(state, nil)

		_, err := f.uc.Submit(context.Background(), state.ID)

		assert.ErrorIs(t, err, checkout.ErrInvalidPhase)
		assert.Zero(t, f.store.Attempts)
	})

	t.Run("concurrent submit", func(t *testing.T) {
		f := newCheckoutFixture(t)
		id := uuid.New()
		f.sessions.EXPECT().Lock(gomock.Any(), id).Return(nil, commands.ErrSessionBusy)

		_, err := f.uc.Submit(context.Background(), id)

		assert.True(t, errs.Is(err, commands.ErrSessionBusy))
	})
}
