//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/handler/api"
	reqdto "event-checkout/internal/handler/dto/request"
	resdto "event-checkout/internal/handler/dto/response"
	"event-checkout/internal/pkg/clock"
	"event-checkout/internal/pkg/config"
	"event-checkout/internal/pkg/cookie"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"
	"event-checkout/tests/common/builder"
	"event-checkout/tests/common/httptest"
	"event-checkout/tests/common/testutil"
	commandsmock "event-checkout/tests/mock/commands"
	queriesmock "event-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCheckoutQueries
	handler      *api.CheckoutHandler
	ownerID      uuid.UUID
	now          time.Time
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCheckoutQueries(s.mockCtrl)
	s.now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.ownerID = uuid.New()
	s.handler = api.NewCheckoutHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(s.now), config.NewTestConfig())

	// Present is pure, so the real one keeps response assertions meaningful
	presenter := queries.NewCheckoutQueries(nil, pricing.NewCalculator(500))
	s.mockQueries.EXPECT().Present(gomock.Any()).DoAndReturn(presenter.Present).AnyTimes()

	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.ownerID)
		}
		c.Next()
	}
	requireAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.ownerID)
		c.Next()
	}

	g := s.router.Group("/checkouts", optionalAuth)
	g.POST("", s.handler.Start)
	g.GET("/:id", s.handler.Get)
	g.POST("/:id/advance", s.handler.Advance)
	g.POST("/:id/retreat", s.handler.Retreat)
	g.POST("/:id/saved-profiles", requireAuth, s.handler.AddSavedProfiles)
	g.DELETE("/:id/saved-profiles", s.handler.SkipSavedProfiles)
	g.POST("/:id/submit", s.handler.Submit)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

type testCaseCheckout struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestStart
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestStart() {
	url := "/checkouts"
	eventID, batchID := uuid.New(), uuid.New()
	reqBody := reqdto.StartCheckoutRequest{
		EventID: eventID,
		BatchID: batchID,
		Tickets: `{"10K":2}`,
	}
	state := builder.NewStateBuilder().WithTickets(
		builder.NewTicketBuilder().WithPrice(2500).BuildSelected(),
		builder.NewTicketBuilder().WithPrice(2500).BuildSelected(),
	).Build()

	s.Run("success: returns 201 with the new session and a resume cookie", func() {
		s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.StartCheckoutRequest) (*checkout.State, error) {
				s.Equal(eventID, req.EventID)
				s.Equal(checkout.Selection{"10K": 2}, req.Selection)
				s.Nil(req.OwnerID)
				return state, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(state.ID, res.ID)
		s.Equal("collecting", res.Phase)
		s.Equal(1, res.Step)
		s.Equal("50.00", res.Totals.Subtotal)
		s.Equal("10.00", res.Totals.Fee)
		s.Equal("60.00", res.Totals.Total)
		s.Len(res.Participants, 2)

		c := httptest.ExtractCookie(rec, cookie.CheckoutSessionCookieName)
		s.Require().NotNil(c)
		s.Equal(state.ID.String(), c.Value)
	})

	s.Run("success: url-encoded selection, group code and caller identity are passed on", func() {
		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("tickets", "%7B%2210K%22%3A1%7D"),
			testutil.Field("group_discount_code", " runclub "),
		)
		s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.StartCheckoutRequest) (*checkout.State, error) {
				s.Equal(checkout.Selection{"10K": 1}, req.Selection)
				s.Equal("RUNCLUB", req.GroupDiscountCode)
				s.Require().NotNil(req.OwnerID)
				s.Equal(s.ownerID, *req.OwnerID)
				return state, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	validation := []testCaseCheckout{
		{name: "missing field: event_id", mutate: testutil.Field("event_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: batch_id", mutate: testutil.Field("batch_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: tickets", mutate: testutil.Field("tickets", nil), expectCode: http.StatusBadRequest},
		{name: "malformed tickets", mutate: testutil.Field("tickets", "10K=2"), expectCode: http.StatusBadRequest, expectInBody: "Invalid ticket selection"},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "unknown event", err: commands.ErrEventNotFound, expectCode: http.StatusNotFound, expectMsg: "Event not found"},
		{name: "sold out", err: errs.Mark(errors.New("stock"), commands.ErrInventoryExhausted), expectCode: http.StatusConflict, expectMsg: "esgotados"},
		{name: "group discount unavailable", err: errs.Mark(pricing.ErrRuleExpired, commands.ErrGroupDiscountUnavailable), expectCode: http.StatusBadRequest, expectMsg: "Desconto"},
		{name: "invalid selection", err: commands.ErrInvalidSelection, expectCode: http.StatusBadRequest, expectMsg: "Invalid ticket selection"},
		{name: "storage", err: errs.Mark(errors.New("redis down"), commands.ErrPersistence), expectCode: http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestGet() {
	state := builder.NewStateBuilder().BuildReady()

	s.Run("success: returns the view", func() {
		view := queries.NewCheckoutQueries(nil, pricing.NewCalculator(500)).Present(state)
		s.mockQueries.EXPECT().Get(gomock.Any(), state.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkouts/"+state.ID.String(), nil, "")

		var res resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.CanSubmit)
		s.Equal("pix", res.PaymentMethod)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkouts/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid checkout id")
	})

	s.Run("error: expired session", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), state.ID).Return(nil, commands.ErrSessionNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/checkouts/"+state.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Checkout not found")
	})
}

// ================================================================================
// TestAdvance
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestAdvance() {
	state := builder.NewStateBuilder().Build()
	url := "/checkouts/" + state.ID.String() + "/advance"
	reqBody := builder.NewParticipantBuilder().BuildAdvanceRequestDTO()

	s.Run("success: waiver capture comes from the request", func() {
		s.mockCommands.EXPECT().Advance(gomock.Any(), state.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in checkout.AdvanceInput) (*checkout.State, checkout.Outcome, error) {
				w := in.Participant.Waiver
				s.True(w.Accepted)
				s.Require().NotNil(w.AcceptedAt)
				s.Equal(s.now, *w.AcceptedAt)
				s.NotEmpty(w.IP)
				s.Equal(checkout.PaymentPix, in.PaymentMethod)
				return state, checkout.OutcomeMoved, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.AdvanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("moved", res.Outcome)
		s.Equal(state.ID, res.Checkout.ID)
	})

	s.Run("error: validation failure returns 422 with field detail", func() {
		verr := &checkout.ValidationError{
			Step:    checkout.StepIdentity,
			Field:   "name",
			Key:     checkout.MsgNameRequired,
			Message: checkout.Message(checkout.LocalePT, checkout.MsgNameRequired),
		}
		s.mockCommands.EXPECT().Advance(gomock.Any(), state.ID, gomock.Any()).Return(state, checkout.Outcome(""), verr)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", ""))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Informe o nome completo.")
		s.Contains(rec.Body.String(), `"field":"name"`)
		s.Contains(rec.Body.String(), `"code":"validation.name_required"`)
	})

	s.Run("error: wrong phase", func() {
		s.mockCommands.EXPECT().Advance(gomock.Any(), state.ID, gomock.Any()).Return(nil, checkout.Outcome(""), checkout.ErrInvalidPhase)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: age must be a number", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("age", "thirty"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestRetreat / saved profiles
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestRetreat() {
	state := builder.NewStateBuilder().Build()

	s.mockCommands.EXPECT().Retreat(gomock.Any(), state.ID).Return(state, nil)
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkouts/"+state.ID.String()+"/retreat", nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *CheckoutHandlerTestSuite) TestSavedProfiles() {
	state := builder.NewStateBuilder().WithSavedProfilesOwner(s.ownerID).Build()
	url := "/checkouts/" + state.ID.String() + "/saved-profiles"
	profileID := uuid.New()
	reqBody := reqdto.AddSavedProfilesRequest{ProfileIDs: []uuid.UUID{profileID}}

	s.Run("success: add uses the caller as owner", func() {
		s.mockCommands.EXPECT().AddSavedProfiles(gomock.Any(), state.ID, s.ownerID, []uuid.UUID{profileID}).Return(state, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: add requires authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: empty selection", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.AddSavedProfilesRequest{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: another owner's checkout", func() {
		s.mockCommands.EXPECT().AddSavedProfiles(gomock.Any(), state.ID, s.ownerID, gomock.Any()).Return(nil, commands.ErrNotCheckoutOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: unknown profile", func() {
		s.mockCommands.EXPECT().AddSavedProfiles(gomock.Any(), state.ID, s.ownerID, gomock.Any()).Return(nil, commands.ErrSavedProfileNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Saved profile not found")
	})

	s.Run("success: skip", func() {
		s.mockCommands.EXPECT().SkipSavedProfiles(gomock.Any(), state.ID).Return(state, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestSubmit() {
	state := builder.NewStateBuilder().BuildReady()
	url := "/checkouts/" + state.ID.String() + "/submit"

	s.Run("success: returns the confirmation and clears the resume cookie", func() {
		result := &commands.SubmitResult{
			State: state,
			Confirmation: commands.Confirmation{
				CheckoutID: state.ID,
				Event:      commands.ConfirmedEvent{Name: "Meia Maratona", StartsAt: s.now},
				Participants: []commands.ConfirmedParticipant{
					{Name: "Maria Silva", Category: "10K", Value: pricing.NewMoney(10000), RegistrationNumber: "RUN-0001"},
				},
				Subtotal: pricing.NewMoney(10000),
				Fee:      pricing.NewMoney(500),
				Total:    pricing.NewMoney(10500),
			},
			RedirectURL: "/checkout/confirmation?total=105.00",
		}
		s.mockCommands.EXPECT().Submit(gomock.Any(), state.ID).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var res resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("105.00", res.Total)
		s.Equal("RUN-0001", res.Participants[0].RegistrationNumber)
		s.Equal(result.RedirectURL, res.RedirectURL)

		c := httptest.ExtractCookie(rec, cookie.CheckoutSessionCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "sold out during submit", err: errs.Mark(errors.New("ticket 10K"), commands.ErrInventoryExhausted), expectCode: http.StatusConflict, expectMsg: "esgotados"},
		{name: "storage failure", err: errs.Mark(errors.New("disk full"), commands.ErrPersistence), expectCode: http.StatusInternalServerError, expectMsg: "Não foi possível"},
		{name: "submit already running", err: commands.ErrSessionBusy, expectCode: http.StatusConflict, expectMsg: "already being submitted"},
		{name: "not ready", err: checkout.ErrInvalidPhase, expectCode: http.StatusConflict},
		{name: "unexpected", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Submit(gomock.Any(), state.ID).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: messages follow Accept-Language", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), state.ID).Return(nil, errs.Mark(errors.New("x"), commands.ErrInventoryExhausted))
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, nil, map[string]string{"Accept-Language": "es-AR"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "agotadas")
	})
}
