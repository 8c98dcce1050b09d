package api

import (
	"io"
	"net/http"

	"ride-together/internal/handler/httperr"
	"ride-together/internal/handler/middleware"
	"ride-together/internal/pkg/clock"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestContext builds the caller identity for a usecase call. It aborts
// with 401 when the route was not behind RequireAuth.
func requestContext(c *gin.Context, clk clock.Clock) (shared.RequestContext, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return shared.RequestContext{}, false
	}
	return shared.NewRequestContext(userID, clk.Now()), true
}

func pathUUID(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}

// bindOptionalJSON binds the body when one was sent, chunked bodies included.
// An empty body leaves obj untouched.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errs.Is(err, io.EOF) {
		return err
	}
	return nil
}
