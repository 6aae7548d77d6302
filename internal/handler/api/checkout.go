package api

import (
	"net/http"

	"event-checkout/internal/domain/checkout"
	reqdto "event-checkout/internal/handler/dto/request"
	resdto "event-checkout/internal/handler/dto/response"
	"event-checkout/internal/handler/httperr"
	"event-checkout/internal/handler/middleware"
	"event-checkout/internal/pkg/clock"
	"event-checkout/internal/pkg/config"
	"event-checkout/internal/pkg/cookie"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	cmds  commands.CheckoutCommands
	q     queries.CheckoutQueries
	clock clock.Clock
	cfg   config.Config
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries, clk clock.Clock, cfg config.Config) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q, clock: clk, cfg: cfg}
}

// @Summary Start checkout
// @Description Open a checkout session from the event page handoff
// @Tags checkouts
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Message locale, defaults to the event language"
// @Param request body reqdto.StartCheckoutRequest true "Handoff"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkouts [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	var req reqdto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	selection, err := checkout.ParseSelection(req.Tickets)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	params := commands.StartCheckoutRequest{
		EventID:           req.EventID,
		BatchID:           req.BatchID,
		Selection:         selection,
		GroupDiscountCode: req.Code(),
		Locale:            c.GetHeader("Accept-Language"),
	}
	if ownerID, ok := middleware.GetUserID(c); ok {
		params.OwnerID = &ownerID
	}

	state, err := h.cmds.Start(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	cookie.SetCheckoutSession(c, state.ID.String(), h.cfg.Session.TTL, h.cfg.IsProduction())
	c.JSON(http.StatusCreated, resdto.FromCheckoutView(h.q.Present(state)))
}

// @Summary Get checkout
// @Description Current wizard position with live totals
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /checkouts/{id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary Advance checkout
// @Description Validate the current step for the current participant and move on
// @Tags checkouts
// @Accept json
// @Produce json
// @Param id path string true "Checkout ID"
// @Param request body reqdto.AdvanceRequest true "Participant form"
// @Success 200 {object} resdto.AdvanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /checkouts/{id}/advance [post]
func (h *CheckoutHandler) Advance(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}

	var req reqdto.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	client := reqdto.NewClientInfo(c.ClientIP(), c.GetHeader("User-Agent"))
	state, outcome, err := h.cmds.Advance(c.Request.Context(), id, req.ToInput(client, h.clock.Now()))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.AdvanceResponse{
		Outcome:  string(outcome),
		Checkout: resdto.FromCheckoutView(h.q.Present(state)),
	})
}

// @Summary Retreat checkout
// @Description Go back one screen
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkouts/{id}/retreat [post]
func (h *CheckoutHandler) Retreat(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}

	state, err := h.cmds.Retreat(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(h.q.Present(state)))
}

// @Summary Add saved profiles
// @Description Add participants from the caller's saved profiles
// @Tags checkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Checkout ID"
// @Param request body reqdto.AddSavedProfilesRequest true "Profiles to add"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /checkouts/{id}/saved-profiles [post]
func (h *CheckoutHandler) AddSavedProfiles(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user in context"), "Unauthorized", nil)
		return
	}

	var req reqdto.AddSavedProfilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	state, err := h.cmds.AddSavedProfiles(c.Request.Context(), id, ownerID, req.ProfileIDs)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(h.q.Present(state)))
}

// @Summary Skip saved profiles
// @Description Continue without adding saved profiles
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkouts/{id}/saved-profiles [delete]
func (h *CheckoutHandler) SkipSavedProfiles(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}

	state, err := h.cmds.SkipSavedProfiles(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(h.q.Present(state)))
}

// @Summary Submit checkout
// @Description Register every participant and return the confirmation
// @Tags checkouts
// @Produce json
// @Param id path string true "Checkout ID"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /checkouts/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	id, ok := checkoutID(c)
	if !ok {
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	cookie.ClearCheckoutSession(c, h.cfg.IsProduction())
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

func checkoutID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout id", nil)
		return uuid.Nil, false
	}
	return id, true
}
