package api

import (
	"errors"
	"net/http"

	"event-checkout/internal/domain/checkout"
	resdto "event-checkout/internal/handler/dto/response"
	"event-checkout/internal/handler/httperr"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use case failures onto HTTP. Messages shown to
// the participant come from the locale table.
func abortWithUseCaseError(c *gin.Context, err error) {
	locale := checkout.ParseLocale(c.GetHeader("Accept-Language"))

	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, verr.Message, resdto.FromValidationError(verr))
		return
	}

	switch {
	case errs.Is(err, commands.ErrInventoryExhausted):
		httperr.AbortWithError(c, http.StatusConflict, err, checkout.Message(locale, checkout.MsgSoldOut), nil)
	case errs.Is(err, commands.ErrGroupDiscountUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, checkout.Message(locale, checkout.MsgGroupDiscountUnavailable), nil)
	case errs.Is(err, commands.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout not found", nil)
	case errs.Is(err, commands.ErrEventNotFound), errs.Is(err, commands.ErrBatchNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
	case errs.Is(err, commands.ErrSavedProfileNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Saved profile not found", nil)
	case errs.Is(err, queries.ErrPostalCodeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Postal code not found", nil)
	case errs.Is(err, queries.ErrInvalidPostalCode):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid postal code", nil)
	case errs.Is(err, commands.ErrInvalidSelection),
		errs.Is(err, checkout.ErrInvalidSelection),
		errs.Is(err, checkout.ErrEmptySelection),
		errs.Is(err, checkout.ErrInvalidQuantity),
		errs.Is(err, checkout.ErrNoProfilesSelected):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket selection", nil)
	case errs.Is(err, commands.ErrNotCheckoutOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Checkout belongs to another user", nil)
	case errs.Is(err, checkout.ErrInvalidPhase):
		httperr.AbortWithError(c, http.StatusConflict, err, "Operation not allowed at this point of the checkout", nil)
	case errs.Is(err, commands.ErrSessionBusy):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout is already being submitted", nil)
	case errs.Is(err, commands.ErrPersistence):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, checkout.Message(locale, checkout.MsgSubmissionFailed), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
