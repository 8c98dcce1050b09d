package api

import (
	"net/http"
	"strconv"

	resdto "ride-together/internal/handler/dto/response"
	"ride-together/internal/handler/httperr"
	"ride-together/internal/pkg/clock"
	"ride-together/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	q     queries.NotificationQueries
	clock clock.Clock
}

func NewNotificationHandler(q queries.NotificationQueries, clk clock.Clock) *NotificationHandler {
	return &NotificationHandler{q: q, clock: clk}
}

// @Summary List notifications
// @Description The caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}

	unread := false
	if raw := c.Query("unread"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "unread must be true or false", nil)
			return
		}
		unread = v
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "limit must be a positive number", nil)
			return
		}
		limit = v
	}

	views, err := h.q.ListNotifications(c.Request.Context(), rc.CurrentUserID, unread, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromNotifications(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": res})
}
