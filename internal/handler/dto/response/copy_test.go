//go:build unit

package response

import (
	"testing"
	"time"

	"ride-together/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPublicRides(t *testing.T) {
	ownerID := uuid.New()
	id := uuid.New()

	got, err := FromPublicRides([]*queries.PublicRideView{{
		ID:         id,
		OwnerID:    ownerID,
		OwnerName:  "Anonymous Rider",
		Date:       "2025-06-10",
		StartTime:  "08:00",
		EndTime:    "10:00",
		TrailType:  "road",
		TrailLabel: "Road Cycling",
		Visibility: "public",
	}})
	require.NoError(t, err)

	want := []PublicRideResponse{{
		ID:         id,
		OwnerID:    ownerID,
		OwnerName:  "Anonymous Rider",
		Date:       "2025-06-10",
		StartTime:  "08:00",
		EndTime:    "10:00",
		TrailType:  "road",
		TrailLabel: "Road Cycling",
		Visibility: "public",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromPublicRides mismatch (-want +got):\n%s", diff)
	}
}

func TestFromNotifications_PointerFields(t *testing.T) {
	bookingID := uuid.New()
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	got, err := FromNotifications([]*queries.NotificationView{
		{ID: uuid.New(), Type: "booking_accepted", Message: "accepted", BookingID: &bookingID, CreatedAt: created},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].BookingID)
	assert.Equal(t, bookingID, *got[0].BookingID)
	assert.Nil(t, got[0].FromUserID)
	assert.Equal(t, created, got[0].CreatedAt)
}

func TestCopyList_Empty(t *testing.T) {
	got, err := FromFriends(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
