package api

import (
	"log/slog"
	"net/http"

	"ride-together/internal/handler/httperr"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/usecase/commands"
	"ride-together/internal/usecase/queries"
	"ride-together/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	msgRideNotFound     = "This ride no longer exists"
	msgBookingNotFound  = "Booking not found"
	msgDuplicateRequest = "You already requested to join this ride"
	msgOwnRide          = "This is your own ride!"
	msgStoreUnavailable = "Service temporarily unavailable, please retry"
	msgInternal         = "Internal server error"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching sentinel wins.
var usecaseErrors = []errorMapping{
	{shared.ErrSlotNotFound, http.StatusNotFound, msgRideNotFound},
	{shared.ErrBookingNotFound, http.StatusNotFound, msgBookingNotFound},
	{shared.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrFriendshipNotFound, http.StatusNotFound, "Friendship not found"},
	{commands.ErrDuplicateRequest, http.StatusConflict, msgDuplicateRequest},
	{commands.ErrSelfBookingDisallowed, http.StatusUnprocessableEntity, msgOwnRide},
	{commands.ErrSelfFriendship, http.StatusUnprocessableEntity, "You cannot add yourself as a friend"},
	{commands.ErrUnauthorizedDecision, http.StatusForbidden, "Only the ride owner can respond to this request"},
	{commands.ErrSlotNotOwned, http.StatusForbidden, "You can only delete your own rides"},
	{commands.ErrBookingNotPending, http.StatusConflict, "This request has already been answered"},
	{commands.ErrInvalidSlot, http.StatusBadRequest, "Invalid ride details"},
	{commands.ErrInvalidDraft, http.StatusBadRequest, "Invalid request message"},
	{commands.ErrInvalidDecision, http.StatusBadRequest, "Decision must be accept or decline"},
	{queries.ErrInvalidDifficulty, http.StatusBadRequest, "Difficulty must be easy, moderate or hard"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired refresh token"},
	{commands.ErrEmailTaken, http.StatusConflict, "Email is already registered"},
	{shared.ErrStoreUnavailable, http.StatusServiceUnavailable, msgStoreUnavailable},
}

// abortWithUsecaseError maps a usecase error onto its HTTP status. Unknown
// errors become 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	slog.Error("unmapped usecase error", "path", c.FullPath(), "error", err.Error())
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
}
