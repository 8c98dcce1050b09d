package notification

import (
	"fmt"
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUndecidedRequest = errs.New("notification requires a decided booking request")

type Type string

const (
	TypeBookingAccepted Type = "booking_accepted"
	TypeBookingDeclined Type = "booking_declined"
)

func TypeForDecision(status booking.Status) (Type, error) {
	if !status.IsTerminal() {
		return "", ErrUndecidedRequest
	}
	return Type("booking_" + string(status)), nil
}

const messageDateLayout = "Monday, Jan 2, 2006"

// DecisionMessage renders the text shown to the requester.
func DecisionMessage(date availability.RideDate, status booking.Status) string {
	return fmt.Sprintf("Your ride request for %s was %s", date.Format(messageDateLayout), status)
}

type Notification struct {
	id         uuid.UUID
	userID     uuid.UUID
	kind       Type
	message    string
	fromUserID uuid.UUID
	bookingID  uuid.UUID
	read       bool
	createdAt  time.Time
}

// NewDecisionNotification addresses the requester of a decided request,
// sent from its owner.
func NewDecisionNotification(req *booking.Request, now time.Time) (*Notification, error) {
	kind, err := TypeForDecision(req.Status())
	if err != nil {
		return nil, err
	}
	return &Notification{
		id:         uuid.New(),
		userID:     req.RequesterID(),
		kind:       kind,
		message:    DecisionMessage(req.Date(), req.Status()),
		fromUserID: req.OwnerID(),
		bookingID:  req.ID(),
		createdAt:  now,
	}, nil
}

func ReconstructNotification(id, userID uuid.UUID, kind Type, message string, fromUserID, bookingID uuid.UUID, read bool, createdAt time.Time) *Notification {
	return &Notification{
		id:         id,
		userID:     userID,
		kind:       kind,
		message:    message,
		fromUserID: fromUserID,
		bookingID:  bookingID,
		read:       read,
		createdAt:  createdAt,
	}
}

func (n *Notification) ID() uuid.UUID         { return n.id }
func (n *Notification) UserID() uuid.UUID     { return n.userID }
func (n *Notification) Type() Type            { return n.kind }
func (n *Notification) Message() string       { return n.message }
func (n *Notification) FromUserID() uuid.UUID { return n.fromUserID }
func (n *Notification) BookingID() uuid.UUID  { return n.bookingID }
func (n *Notification) Read() bool            { return n.read }
func (n *Notification) CreatedAt() time.Time  { return n.createdAt }
