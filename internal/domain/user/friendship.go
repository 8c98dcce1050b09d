package user

import (
	"bytes"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSelfFriendship = errors.New("cannot befriend yourself")

// Friendship is a symmetric edge stored as an ordered pair.
type Friendship struct {
	low       uuid.UUID
	high      uuid.UUID
	createdAt time.Time
}

func NewFriendship(a, b uuid.UUID, now time.Time) (Friendship, error) {
	if a == b {
		return Friendship{}, ErrSelfFriendship
	}
	low, high := OrderPair(a, b)
	return Friendship{low: low, high: high, createdAt: now}, nil
}

// OrderPair returns the two ids in byte order.
func OrderPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}

func (f Friendship) Low() uuid.UUID       { return f.low }
func (f Friendship) High() uuid.UUID      { return f.high }
func (f Friendship) CreatedAt() time.Time { return f.createdAt }

// Other returns the friend of id.
func (f Friendship) Other(id uuid.UUID) uuid.UUID {
	if id == f.low {
		return f.high
	}
	return f.low
}

// FriendRequest is a pending invitation from one user to another. It grants
// nothing until the recipient adds the sender back.
type FriendRequest struct {
	from      uuid.UUID
	to        uuid.UUID
	createdAt time.Time
}

func NewFriendRequest(from, to uuid.UUID, now time.Time) (FriendRequest, error) {
	if from == to {
		return FriendRequest{}, ErrSelfFriendship
	}
	return FriendRequest{from: from, to: to, createdAt: now}, nil
}

func (r FriendRequest) From() uuid.UUID      { return r.from }
func (r FriendRequest) To() uuid.UUID        { return r.to }
func (r FriendRequest) CreatedAt() time.Time { return r.createdAt }
