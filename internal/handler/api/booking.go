package api

import (
	"net/http"

	reqdto "ride-together/internal/handler/dto/request"
	resdto "ride-together/internal/handler/dto/response"
	"ride-together/internal/handler/httperr"
	"ride-together/internal/pkg/clock"
	"ride-together/internal/usecase/commands"
	"ride-together/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	decisionAccepted = "accepted"
	decisionDeclined = "declined"
)

type BookingHandler struct {
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	clock clock.Clock
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Request to join
// @Description Ask the owner of a slot to ride together
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.JoinRequest false "Message and contact sharing"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/slots/{id}/requests [post]
func (h *BookingHandler) RequestToJoin(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	slotID, ok := pathUUID(c, "id", msgRideNotFound)
	if !ok {
		return
	}

	var req reqdto.JoinRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request message", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	id, err := h.cmds.RequestToJoin(c.Request.Context(), rc, slotID, draft)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Pending requests
// @Description Pending requests on any of the caller's slots
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PendingRequestResponse
// @Router /api/bookings/pending [get]
func (h *BookingHandler) ListPending(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	views, err := h.q.ListPendingForOwner(c.Request.Context(), rc.CurrentUserID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromPendingRequests(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": res})
}

// @Summary Get booking
// @Description One request, visible to its owner and requester only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", msgBookingNotFound)
	if !ok {
		return
	}
	view, err := h.q.GetBooking(c.Request.Context(), rc.CurrentUserID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Accept request
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/accept [post]
func (h *BookingHandler) Accept(c *gin.Context) {
	h.decide(c, decisionAccepted)
}

// @Summary Decline request
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/decline [post]
func (h *BookingHandler) Decline(c *gin.Context) {
	h.decide(c, decisionDeclined)
}

func (h *BookingHandler) decide(c *gin.Context, decision string) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", msgBookingNotFound)
	if !ok {
		return
	}
	if err := h.cmds.Decide(c.Request.Context(), rc, id, decision); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirmed rides
// @Description Accepted rides the caller owns or joined, today or later
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ConfirmedRideResponse
// @Router /api/rides/confirmed [get]
func (h *BookingHandler) ListConfirmed(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	views, err := h.q.ListConfirmedRides(c.Request.Context(), rc.CurrentUserID, rc.Now)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromConfirmedRides(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rides": res})
}

// @Summary Confirmed rides calendar
// @Description Confirmed rides as an iCalendar feed
// @Tags rides
// @Produce text/calendar
// @Security BearerAuth
// @Success 200 {string} string
// @Router /api/rides/confirmed.ics [get]
func (h *BookingHandler) ConfirmedCalendar(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	body, err := h.q.ConfirmedRidesCalendar(c.Request.Context(), rc.CurrentUserID, rc.Now)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="confirmed-rides.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}
