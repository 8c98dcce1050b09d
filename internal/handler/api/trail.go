package api

import (
	"net/http"

	resdto "ride-together/internal/handler/dto/response"
	"ride-together/internal/handler/httperr"
	"ride-together/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TrailHandler struct {
	q queries.TrailQueries
}

func NewTrailHandler(q queries.TrailQueries) *TrailHandler {
	return &TrailHandler{q: q}
}

// @Summary List trails
// @Tags trails
// @Produce json
// @Param difficulty query string false "easy, moderate or hard"
// @Success 200 {array} resdto.TrailResponse
// @Failure 400 {object} httperr.Response
// @Router /api/trails [get]
func (h *TrailHandler) List(c *gin.Context) {
	views, err := h.q.ListTrails(c.Request.Context(), c.Query("difficulty"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromTrails(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trails": res})
}

// @Summary Trail markers
// @Tags trails
// @Produce json
// @Success 200 {array} resdto.MarkerResponse
// @Router /api/trails/markers [get]
func (h *TrailHandler) Markers(c *gin.Context) {
	views, err := h.q.ListTrailMarkers(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromMarkers(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"markers": res})
}
