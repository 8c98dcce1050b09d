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

type FriendHandler struct {
	cmds  commands.FriendCommands
	users queries.UserQueries
	clock clock.Clock
}

func NewFriendHandler(cmds commands.FriendCommands, users queries.UserQueries, clk clock.Clock) *FriendHandler {
	return &FriendHandler{cmds: cmds, users: users, clock: clk}
}

// @Summary List friends
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FriendResponse
// @Router /api/friends [get]
func (h *FriendHandler) List(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	views, err := h.users.ListFriends(c.Request.Context(), rc.CurrentUserID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromFriends(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": res})
}

// @Summary List incoming friend requests
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FriendRequestResponse
// @Router /api/friends/requests [get]
func (h *FriendHandler) ListRequests(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	views, err := h.users.ListFriendRequests(c.Request.Context(), rc.CurrentUserID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromFriendRequests(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": res})
}

// @Summary Add friend
// @Description Sends a friend request. When the other user already asked, the friendship
// @Description is confirmed instead. Idempotent.
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddFriendRequest true "Friend"
// @Success 200 {object} resdto.AddFriendResponse "Already friends"
// @Success 201 {object} resdto.AddFriendResponse "Friendship confirmed"
// @Success 202 {object} resdto.AddFriendResponse "Request pending"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/friends [post]
func (h *FriendHandler) Add(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	var req reqdto.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "userId is required", nil)
		return
	}

	res, err := h.cmds.AddFriend(c.Request.Context(), rc, req.UserID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	switch res {
	case commands.FriendshipCreated:
		c.JSON(http.StatusCreated, resdto.AddFriendResponse{Status: resdto.FriendStatusFriends})
	case commands.FriendshipExists:
		c.JSON(http.StatusOK, resdto.AddFriendResponse{Status: resdto.FriendStatusFriends})
	default:
		c.JSON(http.StatusAccepted, resdto.AddFriendResponse{Status: resdto.FriendStatusPending})
	}
}

// @Summary Remove friend
// @Description Also cancels or declines a pending request between the two users
// @Tags friends
// @Security BearerAuth
// @Param userId path string true "Friend user ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/friends/{userId} [delete]
func (h *FriendHandler) Remove(c *gin.Context) {
	rc, ok := requestContext(c, h.clock)
	if !ok {
		return
	}
	friendID, ok := pathUUID(c, "userId", "Invalid user ID")
	if !ok {
		return
	}
	if err := h.cmds.RemoveFriend(c.Request.Context(), rc, friendID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
