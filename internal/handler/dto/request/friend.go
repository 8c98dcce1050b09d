package request

import "github.com/google/uuid"

type AddFriendRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}
