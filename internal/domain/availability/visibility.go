package availability

import (
	"time"

	"github.com/google/uuid"
)

type FriendChecker interface {
	AreFriends(a, b uuid.UUID) bool
}

// FriendSet holds the friends of a single user.
type FriendSet struct {
	of  uuid.UUID
	ids map[uuid.UUID]struct{}
}

func NewFriendSet(of uuid.UUID, friendIDs ...uuid.UUID) FriendSet {
	ids := make(map[uuid.UUID]struct{}, len(friendIDs))
	for _, id := range friendIDs {
		ids[id] = struct{}{}
	}
	return FriendSet{of: of, ids: ids}
}

func (f FriendSet) AreFriends(a, b uuid.UUID) bool {
	switch f.of {
	case a:
		_, ok := f.ids[b]
		return ok
	case b:
		_, ok := f.ids[a]
		return ok
	default:
		return false
	}
}

func (f FriendSet) Len() int { return len(f.ids) }

// NoFriends is the empty graph: friends-only slots are owner-only.
var NoFriends FriendChecker = FriendSet{}

// IsVisibleTo decides whether viewer may see slot.
func IsVisibleTo(slot *Slot, viewerID uuid.UUID, friends FriendChecker) bool {
	if slot.IsOwnedBy(viewerID) {
		return true
	}
	switch slot.Visibility() {
	case VisibilityPublic:
		return true
	case VisibilityFriends:
		if friends == nil {
			return false
		}
		return friends.AreFriends(slot.OwnerID(), viewerID)
	default:
		return false
	}
}

// IsDiscoverableBy is the discovery filter: public, someone else's, not in the past.
func IsDiscoverableBy(slot *Slot, viewerID uuid.UUID, now time.Time) bool {
	return slot.Visibility() == VisibilityPublic &&
		!slot.IsOwnedBy(viewerID) &&
		slot.Date().IsUpcoming(now)
}

type Badge struct {
	Visibility Visibility
	Label      string
}

func BadgeFor(slot *Slot) Badge {
	if slot.Visibility() == VisibilityPublic {
		return Badge{Visibility: VisibilityPublic, Label: "Public"}
	}
	return Badge{Visibility: VisibilityFriends, Label: "Friends Only"}
}
