//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"ride-together/internal/domain/booking"
	"ride-together/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)

func TestNewRequest(t *testing.T) {
	owner, requester := uuid.New(), uuid.New()
	slot := builder.NewSlotBuilder().WithOwner(owner).BuildDomain()

	t.Run("枠の情報をコピーしてpendingで作成", func(t *testing.T) {
		contact := booking.Contact{Email: "r@example.com"}
		req, err := booking.NewRequest(slot, requester, " Kenji ", booking.DefaultDraft(), contact, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, req.ID())
		assert.Equal(t, slot.ID(), req.AvailabilityID())
		assert.Equal(t, owner, req.OwnerID())
		assert.Equal(t, requester, req.RequesterID())
		assert.Equal(t, "Kenji", req.RequesterName())
		assert.Equal(t, booking.StatusPending, req.Status())
		assert.Equal(t, booking.DefaultMessage, req.Message())
		assert.Equal(t, slot.Date(), req.Date())
		assert.Equal(t, slot.TimeRange(), req.TimeRange())
		assert.Equal(t, slot.TrailType(), req.TrailType())
		assert.Equal(t, contact, req.Contact())
		assert.Equal(t, now, req.CreatedAt())
	})

	t.Run("名前が空ならAnonymous", func(t *testing.T) {
		req, err := booking.NewRequest(slot, requester, "  ", booking.DefaultDraft(), booking.Contact{}, now)
		require.NoError(t, err)
		assert.Equal(t, booking.AnonymousRequester, req.RequesterName())
	})

	t.Run("自分の枠にはリクエストできない", func(t *testing.T) {
		req, err := booking.NewRequest(slot, owner, "Owner", booking.DefaultDraft(), booking.Contact{}, now)
		assert.Nil(t, req)
		assert.ErrorIs(t, err, booking.ErrSelfBookingDisallowed)
	})
}

func TestDecide(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("オーナーは承認できる", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, req.Decide(booking.StatusAccepted, req.OwnerID(), later))
		assert.Equal(t, booking.StatusAccepted, req.Status())
		assert.Equal(t, later, req.UpdatedAt())
	})

	t.Run("オーナーは辞退できる", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, req.Decide(booking.StatusDeclined, req.OwnerID(), later))
		assert.Equal(t, booking.StatusDeclined, req.Status())
	})

	t.Run("オーナー以外は決定できない", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildDomain()
		err := req.Decide(booking.StatusAccepted, req.RequesterID(), later)
		assert.ErrorIs(t, err, booking.ErrUnauthorizedDecision)
		assert.Equal(t, booking.StatusPending, req.Status())
	})

	t.Run("決定済みは変更できない", func(t *testing.T) {
		req := builder.NewBookingBuilder().WithStatus(booking.StatusDeclined).BuildDomain()
		err := req.Decide(booking.StatusAccepted, req.OwnerID(), later)
		assert.ErrorIs(t, err, booking.ErrNotPending)
		assert.Equal(t, booking.StatusDeclined, req.Status())
	})

	t.Run("pendingへの決定は無効", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildDomain()
		err := req.Decide(booking.StatusPending, req.OwnerID(), later)
		assert.ErrorIs(t, err, booking.ErrInvalidDecision)
	})
}

func TestParseDecision(t *testing.T) {
	for _, s := range []string{"accepted", " Declined "} {
		_, err := booking.ParseDecision(s)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"", "pending", "maybe"} {
		_, err := booking.ParseDecision(s)
		assert.ErrorIs(t, err, booking.ErrInvalidDecision, s)
	}
}

func TestRoles(t *testing.T) {
	req := builder.NewBookingBuilder().BuildDomain()

	role, ok := req.RoleOf(req.OwnerID())
	assert.True(t, ok)
	assert.Equal(t, booking.RoleOwner, role)
	assert.Equal(t, req.RequesterID(), req.PartnerOf(req.OwnerID()))

	role, ok = req.RoleOf(req.RequesterID())
	assert.True(t, ok)
	assert.Equal(t, booking.RoleParticipant, role)
	assert.Equal(t, req.OwnerID(), req.PartnerOf(req.RequesterID()))

	_, ok = req.RoleOf(uuid.New())
	assert.False(t, ok)
	assert.False(t, req.Involves(uuid.New()))
}

func TestNewDraft(t *testing.T) {
	t.Run("空メッセージは既定文", func(t *testing.T) {
		d, err := booking.NewDraft("   ", booking.ContactShare{})
		require.NoError(t, err)
		assert.Equal(t, booking.DefaultDraft(), d)
	})

	t.Run("500文字までOK", func(t *testing.T) {
		_, err := booking.NewDraft(strings.Repeat("あ", booking.MaxMessageLength), booking.ContactShare{})
		assert.NoError(t, err)
	})

	t.Run("501文字NG", func(t *testing.T) {
		_, err := booking.NewDraft(strings.Repeat("a", booking.MaxMessageLength+1), booking.ContactShare{})
		assert.ErrorIs(t, err, booking.ErrInvalidDraft)
	})

	t.Run("電話共有には番号が必要", func(t *testing.T) {
		_, err := booking.NewDraft("hi", booking.ContactShare{Phone: true, PhoneNumber: "  "})
		assert.ErrorIs(t, err, booking.ErrInvalidDraft)
	})

	t.Run("共有しない連絡先は解決されない", func(t *testing.T) {
		d, err := booking.NewDraft("hi", booking.ContactShare{Email: false, Phone: false, PhoneNumber: "090"})
		require.NoError(t, err)
		assert.Equal(t, booking.Contact{}, d.ResolveContact("r@example.com"))
	})

	t.Run("共有する連絡先だけ解決", func(t *testing.T) {
		d, err := booking.NewDraft("hi", booking.ContactShare{Email: true, Phone: true, PhoneNumber: " 090-1111-2222 "})
		require.NoError(t, err)
		assert.Equal(t, booking.Contact{Email: "r@example.com", Phone: "090-1111-2222"}, d.ResolveContact(" r@example.com "))
	})
}
