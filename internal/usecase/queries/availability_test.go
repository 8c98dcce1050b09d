//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"ride-together/internal/domain/availability"
	"ride-together/internal/usecase/queries"
	"ride-together/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPublicRides(t *testing.T) {
	ctx := context.Background()
	viewer, aiko, ghost := uuid.New(), uuid.New(), uuid.New()

	later := builder.NewSlotBuilder().WithOwner(aiko).WithDate("2026-10-19").WithTimes("07:00", "09:00").BuildDomain()
	today := builder.NewSlotBuilder().WithOwner(ghost).WithDate("2026-10-17").WithTimes("18:00", "20:00").BuildDomain()
	sameDayEarly := builder.NewSlotBuilder().WithOwner(aiko).WithDate("2026-10-19").WithTimes("06:00", "08:00").BuildDomain()
	past := builder.NewSlotBuilder().WithOwner(aiko).WithDate("2026-10-16").BuildDomain()
	mine := builder.NewSlotBuilder().WithOwner(viewer).BuildDomain()
	friendsOnly := builder.NewSlotBuilder().WithOwner(aiko).WithVisibility("friends").BuildDomain()

	slots := &fakeSlots{slots: []*availability.Slot{later, today, sameDayEarly, past, mine, friendsOnly}}
	dir := &fakeDirectory{names: map[uuid.UUID]string{aiko: "Aiko"}}
	q := queries.NewAvailabilityQueries(slots, &fakeFriends{}, dir)

	rides, err := q.ListPublicRides(ctx, viewer, testNow)
	require.NoError(t, err)

	ids := make([]uuid.UUID, len(rides))
	for i, r := range rides {
		ids[i] = r.ID
	}
	assert.Equal(t, []uuid.UUID{today.ID(), sameDayEarly.ID(), later.ID()}, ids)
	assert.Equal(t, queries.FallbackOwnerName, rides[0].OwnerName)
	assert.Equal(t, "Aiko", rides[1].OwnerName)
	assert.Equal(t, "Road Cycling", rides[2].TrailLabel)

	require.Len(t, dir.asked, 1)
	assert.ElementsMatch(t, []uuid.UUID{aiko, ghost}, dir.asked[0], "owner ids are looked up once each")

	t.Run("directory failure falls back to the anonymous name", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(slots, &fakeFriends{}, &fakeDirectory{err: errors.New("redis down")})

		rides, err := q.ListPublicRides(ctx, viewer, testNow)
		require.NoError(t, err)
		for _, r := range rides {
			assert.Equal(t, "Anonymous Rider", r.OwnerName)
		}
	})

	t.Run("nothing discoverable is an empty list", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&fakeSlots{slots: []*availability.Slot{mine, past}}, &fakeFriends{}, dir)

		rides, err := q.ListPublicRides(ctx, viewer, testNow)
		require.NoError(t, err)
		assert.NotNil(t, rides)
		assert.Empty(t, rides)
	})
}

func TestListMySlots(t *testing.T) {
	owner := uuid.New()
	b := builder.NewSlotBuilder().WithOwner(owner).WithDate("2026-10-20").BuildDomain()
	a := builder.NewSlotBuilder().WithOwner(owner).WithDate("2026-10-10").WithVisibility("friends").BuildDomain()
	other := builder.NewSlotBuilder().BuildDomain()

	q := queries.NewAvailabilityQueries(&fakeSlots{slots: []*availability.Slot{b, a, other}}, &fakeFriends{}, nil)

	views, err := q.ListMySlots(context.Background(), owner, testNow)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, a.ID(), views[0].ID)
	assert.True(t, views[0].IsPast)
	assert.Equal(t, "Friends Only", views[0].Badge)
	assert.False(t, views[1].IsPast)
	assert.Equal(t, "Public", views[1].Badge)
}

func TestGetSlot(t *testing.T) {
	ctx := context.Background()
	owner, friend, stranger := uuid.New(), uuid.New(), uuid.New()
	friendsOnly := builder.NewSlotBuilder().WithOwner(owner).WithVisibility("friends").BuildDomain()
	public := builder.NewSlotBuilder().WithOwner(owner).BuildDomain()

	newQueries := func(friends *fakeFriends) queries.AvailabilityQueries {
		return queries.NewAvailabilityQueries(
			&fakeSlots{slots: []*availability.Slot{friendsOnly, public}},
			friends,
			&fakeDirectory{names: map[uuid.UUID]string{owner: "Owner"}},
		)
	}

	t.Run("public slot skips the friend lookup", func(t *testing.T) {
		friends := &fakeFriends{}
		view, err := newQueries(friends).GetSlot(ctx, stranger, public.ID(), testNow)
		require.NoError(t, err)
		assert.Equal(t, "Owner", view.OwnerName)
		assert.Zero(t, friends.calls)
	})

	t.Run("friend sees a friends-only slot", func(t *testing.T) {
		friends := &fakeFriends{ids: map[uuid.UUID][]uuid.UUID{friend: {owner}}}
		_, err := newQueries(friends).GetSlot(ctx, friend, friendsOnly.ID(), testNow)
		assert.NoError(t, err)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		friends := &fakeFriends{ids: map[uuid.UUID][]uuid.UUID{friend: {owner}}}
		_, err := newQueries(friends).GetSlot(ctx, stranger, friendsOnly.ID(), testNow)
		assertIs(t, err, queries.ErrSlotNotFound)
	})

	t.Run("owner sees their own slot", func(t *testing.T) {
		friends := &fakeFriends{}
		_, err := newQueries(friends).GetSlot(ctx, owner, friendsOnly.ID(), testNow)
		assert.NoError(t, err)
		assert.Zero(t, friends.calls)
	})

	t.Run("missing slot", func(t *testing.T) {
		_, err := newQueries(&fakeFriends{}).GetSlot(ctx, owner, uuid.New(), testNow)
		assertIs(t, err, queries.ErrSlotNotFound)
	})
}
