package api

import (
	"net/http"

	resdto "event-checkout/internal/handler/dto/response"
	"event-checkout/internal/handler/httperr"
	"event-checkout/internal/handler/middleware"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	postalCodes queries.PostalCodeQueries
	profiles    queries.ProfileQueries
}

func NewLookupHandler(postalCodes queries.PostalCodeQueries, profiles queries.ProfileQueries) *LookupHandler {
	return &LookupHandler{postalCodes: postalCodes, profiles: profiles}
}

// @Summary Look up postal code
// @Description Resolve a postal code to street, neighborhood, city and region
// @Tags lookups
// @Produce json
// @Param code path string true "Postal code"
// @Success 200 {object} resdto.PostalAddressResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /postal-codes/{code} [get]
func (h *LookupHandler) PostalCode(c *gin.Context) {
	addr, err := h.postalCodes.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPostalAddress(addr))
}

// @Summary List saved profiles
// @Description Participants the caller registered before
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SavedProfileResponse
// @Failure 401 {object} httperr.Response
// @Router /profiles [get]
func (h *LookupHandler) SavedProfiles(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user in context"), "Unauthorized", nil)
		return
	}

	views, err := h.profiles.ListSaved(c.Request.Context(), ownerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSavedProfiles(views))
}
