package response

import (
	"time"

	"ride-together/internal/usecase/queries"

	"github.com/google/uuid"
)

type FriendResponse struct {
	UserID       uuid.UUID `json:"userId"`
	DisplayName  string    `json:"displayName"`
	FriendsSince time.Time `json:"friendsSince"`
}

type FriendRequestResponse struct {
	UserID      uuid.UUID `json:"userId"`
	DisplayName string    `json:"displayName"`
	RequestedAt time.Time `json:"requestedAt"`
}

const (
	FriendStatusPending = "pending"
	FriendStatusFriends = "friends"
)

type AddFriendResponse struct {
	Status string `json:"status"`
}

type TrailResponse struct {
	Name        string     `json:"name"`
	Coordinates [2]float64 `json:"coordinates"`
	Distance    string     `json:"distance"`
	Difficulty  string     `json:"difficulty"`
	Color       string     `json:"color"`
	Type        string     `json:"type,omitempty"`
	Elevation   string     `json:"elevation,omitempty"`
	Description string     `json:"description,omitempty"`
}

type MarkerResponse struct {
	Coordinates [2]float64        `json:"coordinates"`
	Label       string            `json:"label"`
	Metadata    map[string]string `json:"metadata"`
}

func FromFriends(vs []*queries.FriendView) ([]FriendResponse, error) {
	return copyList[FriendResponse](vs)
}

func FromFriendRequests(vs []*queries.FriendRequestView) ([]FriendRequestResponse, error) {
	return copyList[FriendRequestResponse](vs)
}

func FromTrails(vs []*queries.TrailView) ([]TrailResponse, error) {
	return copyList[TrailResponse](vs)
}

func FromMarkers(vs []*queries.MarkerView) ([]MarkerResponse, error) {
	return copyList[MarkerResponse](vs)
}
