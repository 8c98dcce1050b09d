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

type SlotHandler struct {
	cmds  commands.SlotCommands
	q     queries.AvailabilityQueries
	clock clock.Clock
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.AvailabilityQueries, clk clock.Clock) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Post availability
// @Description Create an availability slot owned by the caller
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ride details", nil)
		return
	}

	id, err := h.cmds.CreateSlot(c.Request.Context(), rc, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.GetSlot(c.Request.Context(), rc.CurrentUserID, id, rc.Now)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondSlot(c, http.StatusCreated, view)
}

// @Summary My slots
// @Description List the caller's own slots, past ones included
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SlotResponse
// @Router /api/slots/mine [get]
func (h *SlotHandler) ListMine(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	views, err := h.q.ListMySlots(c.Request.Context(), rc.CurrentUserID, rc.Now)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromSlotViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": res})
}

// @Summary Get slot
// @Description Get one slot the caller is allowed to see
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} httperr.Response
// @Router /api/slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", msgRideNotFound)
	if !ok {
		return
	}
	view, err := h.q.GetSlot(c.Request.Context(), rc.CurrentUserID, id, rc.Now)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondSlot(c, http.StatusOK, view)
}

// @Summary Delete slot
// @Description Delete one of the caller's slots
// @Tags slots
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", msgRideNotFound)
	if !ok {
		return
	}
	if err := h.cmds.DeleteSlot(c.Request.Context(), rc, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Discover rides
// @Description Public upcoming slots owned by other riders
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PublicRideResponse
// @Router /api/rides/public [get]
func (h *SlotHandler) ListPublic(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	views, err := h.q.ListPublicRides(c.Request.Context(), rc.CurrentUserID, rc.Now)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromPublicRides(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rides": res})
}

func (h *SlotHandler) respondSlot(c *gin.Context, status int, view *queries.SlotView) {
	res, err := resdto.FromSlotView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(status, res)
}
