package booking

import (
	"strings"

	"ride-together/internal/pkg/errs"
)

var (
	ErrInvalidStatus   = errs.New("invalid booking status")
	ErrInvalidDecision = errs.New("decision must be accepted or declined")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusAccepted, StatusDeclined:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// ParseDecision accepts only the two terminal statuses.
func ParseDecision(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusAccepted, StatusDeclined:
		return st, nil
	default:
		return "", ErrInvalidDecision
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

func (s Status) String() string { return string(s) }

// Role of a user in a confirmed ride.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleParticipant Role = "participant"
)
