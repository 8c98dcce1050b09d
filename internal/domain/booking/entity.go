package booking

import (
	"strings"
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSelfBookingDisallowed = errs.New("cannot request to join own ride")
	ErrUnauthorizedDecision  = errs.New("only the slot owner can decide")
	ErrNotPending            = errs.New("booking request already decided")
)

const AnonymousRequester = "Anonymous"

// Request is a rider's ask to join a slot. Slot fields are copied at
// creation time so the request survives deletion of the slot.
type Request struct {
	id             uuid.UUID
	availabilityID uuid.UUID
	ownerID        uuid.UUID
	requesterID    uuid.UUID
	requesterName  string
	status         Status
	message        string
	date           availability.RideDate
	timeRange      availability.TimeRange
	trailType      availability.TrailType
	contact        Contact
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRequest(slot *availability.Slot, requesterID uuid.UUID, requesterName string, draft Draft, contact Contact, now time.Time) (*Request, error) {
	if slot.IsOwnedBy(requesterID) {
		return nil, ErrSelfBookingDisallowed
	}

	requesterName = strings.TrimSpace(requesterName)
	if requesterName == "" {
		requesterName = AnonymousRequester
	}
	message := draft.Message()
	if message == "" {
		message = DefaultMessage
	}

	return &Request{
		id:             uuid.New(),
		availabilityID: slot.ID(),
		ownerID:        slot.OwnerID(),
		requesterID:    requesterID,
		requesterName:  requesterName,
		status:         StatusPending,
		message:        message,
		date:           slot.Date(),
		timeRange:      slot.TimeRange(),
		trailType:      slot.TrailType(),
		contact:        contact,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// State carries stored fields for ReconstructRequest.
type State struct {
	ID             uuid.UUID
	AvailabilityID uuid.UUID
	OwnerID        uuid.UUID
	RequesterID    uuid.UUID
	RequesterName  string
	Status         Status
	Message        string
	Date           availability.RideDate
	TimeRange      availability.TimeRange
	TrailType      availability.TrailType
	Contact        Contact
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructRequest(s State) *Request {
	return &Request{
		id:             s.ID,
		availabilityID: s.AvailabilityID,
		ownerID:        s.OwnerID,
		requesterID:    s.RequesterID,
		requesterName:  s.RequesterName,
		status:         s.Status,
		message:        s.Message,
		date:           s.Date,
		timeRange:      s.TimeRange,
		trailType:      s.TrailType,
		contact:        s.Contact,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

func (r *Request) ID() uuid.UUID                     { return r.id }
func (r *Request) AvailabilityID() uuid.UUID         { return r.availabilityID }
func (r *Request) OwnerID() uuid.UUID                { return r.ownerID }
func (r *Request) RequesterID() uuid.UUID            { return r.requesterID }
func (r *Request) RequesterName() string             { return r.requesterName }
func (r *Request) Status() Status                    { return r.status }
func (r *Request) Message() string                   { return r.message }
func (r *Request) Date() availability.RideDate       { return r.date }
func (r *Request) TimeRange() availability.TimeRange { return r.timeRange }
func (r *Request) TrailType() availability.TrailType { return r.trailType }
func (r *Request) Contact() Contact                  { return r.contact }
func (r *Request) CreatedAt() time.Time              { return r.createdAt }
func (r *Request) UpdatedAt() time.Time              { return r.updatedAt }

// Decide moves a pending request to accepted or declined. Only the slot
// owner may decide, and only once.
func (r *Request) Decide(decision Status, deciderID uuid.UUID, now time.Time) error {
	if !decision.IsTerminal() {
		return ErrInvalidDecision
	}
	if deciderID != r.ownerID {
		return ErrUnauthorizedDecision
	}
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = decision
	r.updatedAt = now
	return nil
}

func (r *Request) Involves(userID uuid.UUID) bool {
	return userID == r.ownerID || userID == r.requesterID
}

// RoleOf returns the user's role in the ride, false when not a party to it.
func (r *Request) RoleOf(userID uuid.UUID) (Role, bool) {
	switch userID {
	case r.ownerID:
		return RoleOwner, true
	case r.requesterID:
		return RoleParticipant, true
	default:
		return "", false
	}
}

// PartnerOf returns the other party of the ride.
func (r *Request) PartnerOf(userID uuid.UUID) uuid.UUID {
	if userID == r.ownerID {
		return r.requesterID
	}
	return r.ownerID
}
