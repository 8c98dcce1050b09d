//go:build unit

package commands_test

import (
	"context"
	"maps"
	"slices"
	"testing"
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/domain/notification"
	"ride-together/internal/domain/user"
	"ride-together/internal/infra"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// memStore is an in-memory stand-in for the Postgres unit of work. Each
// Within runs against a copy that replaces the committed state only when
// the callback succeeds.
type memStore struct {
	slots         map[uuid.UUID]*availability.Slot
	bookings      map[uuid.UUID]booking.State
	users         map[uuid.UUID]*shared.UserSnapshot
	friendships   map[[2]uuid.UUID]user.Friendship
	friendReqs    map[[2]uuid.UUID]user.FriendRequest
	notifications []*notification.Notification
	jobs          []*memJob
	events        []shared.ChangeEvent
	lastLogins    map[uuid.UUID]int

	withinCalls int
	inTx        bool

	// Injected failures, consumed by the matching write.
	failPublish      error
	failNotification error
	failUpdateStatus error
	failMarkSent     error
}

type memJob struct {
	shared.NotificationJob
	status    shared.JobStatus
	lastError string
}

func newMemStore() *memStore {
	return &memStore{
		slots:       map[uuid.UUID]*availability.Slot{},
		bookings:    map[uuid.UUID]booking.State{},
		users:       map[uuid.UUID]*shared.UserSnapshot{},
		friendships: map[[2]uuid.UUID]user.Friendship{},
		friendReqs:  map[[2]uuid.UUID]user.FriendRequest{},
		lastLogins:  map[uuid.UUID]int{},
	}
}

func (s *memStore) clone() *memStore {
	c := *s
	c.slots = maps.Clone(s.slots)
	c.bookings = maps.Clone(s.bookings)
	c.users = maps.Clone(s.users)
	c.friendships = maps.Clone(s.friendships)
	c.friendReqs = maps.Clone(s.friendReqs)
	c.lastLogins = maps.Clone(s.lastLogins)
	c.notifications = slices.Clone(s.notifications)
	c.events = slices.Clone(s.events)
	c.jobs = make([]*memJob, len(s.jobs))
	for i, j := range s.jobs {
		cp := *j
		c.jobs[i] = &cp
	}
	return &c
}

func (s *memStore) addUser(email, displayName, hash string) uuid.UUID {
	id := uuid.New()
	s.users[id] = &shared.UserSnapshot{ID: id, Email: email, DisplayName: displayName, PasswordHash: hash}
	return id
}

func (s *memStore) addSlot(slot *availability.Slot) {
	s.slots[slot.ID()] = slot
}

func (s *memStore) addBooking(req *booking.Request) {
	s.bookings[req.ID()] = stateOf(req)
}

func (s *memStore) befriend(a, b uuid.UUID) {
	f, _ := user.NewFriendship(a, b, time.Time{})
	s.friendships[[2]uuid.UUID{f.Low(), f.High()}] = f
}

func (s *memStore) booking(id uuid.UUID) *booking.Request {
	st, ok := s.bookings[id]
	if !ok {
		return nil
	}
	return booking.ReconstructRequest(st)
}

func stateOf(r *booking.Request) booking.State {
	return booking.State{
		ID:             r.ID(),
		AvailabilityID: r.AvailabilityID(),
		OwnerID:        r.OwnerID(),
		RequesterID:    r.RequesterID(),
		RequesterName:  r.RequesterName(),
		Status:         r.Status(),
		Message:        r.Message(),
		Date:           r.Date(),
		TimeRange:      r.TimeRange(),
		TrailType:      r.TrailType(),
		Contact:        r.Contact(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

// assertIs checks identity through cockroachdb marks, which the
// standard errors.Is does not see.
func assertIs(t *testing.T, err, target error) {
	t.Helper()
	assert.Truef(t, errs.Is(err, target), "expected %v, got %v", target, err)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// UnitOfWork

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.withinCalls++
	s.inTx = true
	defer func() { s.inTx = false }()
	work := s.clone()
	if err := fn(ctx, &memTx{s: work}); err != nil {
		return err
	}
	*s = *work
	return nil
}

func (s *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) CommandReads() shared.CommandReads { return memReads{s: s} }

type memTx struct{ s *memStore }

func (t *memTx) Slots() shared.SlotRepository                 { return memSlots{t.s} }
func (t *memTx) Bookings() shared.BookingRepository           { return memBookings{t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return memNotifications{t.s} }
func (t *memTx) Users() shared.UserRepository                 { return memUsers{t.s} }
func (t *memTx) Friendships() shared.FriendshipRepository     { return memFriendships{t.s} }
func (t *memTx) Events() shared.EventPublisher                { return memEvents{t.s} }
func (t *memTx) Reads() shared.CommandReads                   { return memReads{t.s} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

type memReads struct{ s *memStore }

func (r memReads) SlotByID(_ context.Context, id uuid.UUID) (*availability.Slot, error) {
	if slot, ok := r.s.slots[id]; ok {
		return slot, nil
	}
	return nil, notFound("slot not found")
}

func (r memReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Request, error) {
	if req := r.s.booking(id); req != nil {
		return req, nil
	}
	return nil, notFound("booking not found")
}

func (r memReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, notFound("user not found")
}

func (r memReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r memReads) FriendIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, f := range r.s.friendships {
		if f.Low() == userID || f.High() == userID {
			ids = append(ids, f.Other(userID))
		}
	}
	return ids, nil
}

type memSlots struct{ s *memStore }

func (r memSlots) Create(_ context.Context, _ sqlc.DBTX, slot *availability.Slot) error {
	r.s.slots[slot.ID()] = slot
	return nil
}

func (r memSlots) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.s.slots[id]; !ok {
		return notFound("slot not found")
	}
	delete(r.s.slots, id)
	return nil
}

type memBookings struct{ s *memStore }

func (r memBookings) CreateIfAbsent(_ context.Context, _ sqlc.DBTX, req *booking.Request) (uuid.UUID, bool, error) {
	for _, st := range r.s.bookings {
		if st.AvailabilityID == req.AvailabilityID() && st.RequesterID == req.RequesterID() {
			return uuid.Nil, false, nil
		}
	}
	r.s.bookings[req.ID()] = stateOf(req)
	return req.ID(), true, nil
}

func (r memBookings) UpdateStatus(_ context.Context, _ sqlc.DBTX, req *booking.Request) error {
	if err := r.s.failUpdateStatus; err != nil {
		r.s.failUpdateStatus = nil
		return err
	}
	st, ok := r.s.bookings[req.ID()]
	if !ok || st.Status != booking.StatusPending {
		return infra.WrapRepoErr("booking not pending", nil, infra.KindConditionFailed)
	}
	r.s.bookings[req.ID()] = stateOf(req)
	return nil
}

type memNotifications struct{ s *memStore }

func (r memNotifications) Create(_ context.Context, _ sqlc.DBTX, n *notification.Notification) error {
	if err := r.s.failNotification; err != nil {
		r.s.failNotification = nil
		return err
	}
	r.s.notifications = append(r.s.notifications, n)
	return nil
}

func (r memNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.jobs = append(r.s.jobs, &memJob{
		NotificationJob: shared.NotificationJob{
			ID:      uuid.New(),
			Kind:    kind,
			Topic:   topic,
			Payload: payload,
			RunAt:   runAt,
		},
		status: shared.JobStatusQueued,
	})
	return nil
}

func (r memNotifications) ClaimDueJobs(_ context.Context, _ sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]shared.NotificationJob, error) {
	var out []shared.NotificationJob
	for _, j := range r.s.jobs {
		if len(out) == int(limit) {
			break
		}
		if j.status == shared.JobStatusQueued && !j.RunAt.After(now) {
			j.RunAt = leaseUntil
			out = append(out, j.NotificationJob)
		}
	}
	return out, nil
}

func (r memNotifications) MarkJobSent(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID) error {
	if err := r.s.failMarkSent; err != nil {
		r.s.failMarkSent = nil
		return err
	}
	j := r.find(jobID)
	j.status = shared.JobStatusSent
	j.Attempts++
	return nil
}

func (r memNotifications) RescheduleJob(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, status shared.JobStatus, lastError string, runAt time.Time) error {
	j := r.find(jobID)
	j.status = status
	j.lastError = lastError
	j.RunAt = runAt
	j.Attempts++
	return nil
}

func (r memNotifications) find(id uuid.UUID) *memJob {
	for _, j := range r.s.jobs {
		if j.ID == id {
			return j
		}
	}
	panic("job not found: " + id.String())
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.s.users {
		if existing.Email == u.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr("email exists", nil, infra.KindDuplicateKey)
		}
	}
	r.s.users[u.ID()] = &shared.UserSnapshot{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		DisplayName:  u.DisplayName().Value(),
		PasswordHash: u.PasswordHash(),
	}
	return u.ID(), nil
}

func (r memUsers) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	r.s.lastLogins[userID]++
	return nil
}

type memFriendships struct{ s *memStore }

func (r memFriendships) Add(_ context.Context, _ sqlc.DBTX, f user.Friendship) (bool, error) {
	key := [2]uuid.UUID{f.Low(), f.High()}
	if _, ok := r.s.friendships[key]; ok {
		return false, nil
	}
	r.s.friendships[key] = f
	return true, nil
}

func (r memFriendships) Remove(_ context.Context, _ sqlc.DBTX, a, b uuid.UUID) (bool, error) {
	low, high := user.OrderPair(a, b)
	key := [2]uuid.UUID{low, high}
	if _, ok := r.s.friendships[key]; !ok {
		return false, nil
	}
	delete(r.s.friendships, key)
	return true, nil
}

func (r memFriendships) AddRequest(_ context.Context, _ sqlc.DBTX, req user.FriendRequest) (bool, error) {
	key := [2]uuid.UUID{req.From(), req.To()}
	if _, ok := r.s.friendReqs[key]; ok {
		return false, nil
	}
	r.s.friendReqs[key] = req
	return true, nil
}

func (r memFriendships) RemoveRequest(_ context.Context, _ sqlc.DBTX, from, to uuid.UUID) (bool, error) {
	key := [2]uuid.UUID{from, to}
	if _, ok := r.s.friendReqs[key]; !ok {
		return false, nil
	}
	delete(r.s.friendReqs, key)
	return true, nil
}

type memEvents struct{ s *memStore }

func (r memEvents) Publish(_ context.Context, _ sqlc.DBTX, ev shared.ChangeEvent) error {
	if err := r.s.failPublish; err != nil {
		r.s.failPublish = nil
		return err
	}
	r.s.events = append(r.s.events, ev)
	return nil
}
