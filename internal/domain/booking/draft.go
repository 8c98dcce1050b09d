package booking

import (
	"strings"
	"unicode/utf8"

	"ride-together/internal/pkg/errs"
)

var ErrInvalidDraft = errs.New("invalid booking request draft")

const (
	DefaultMessage   = "I'd love to join your ride!"
	MaxMessageLength = 500
)

type ContactShare struct {
	Email       bool
	Phone       bool
	PhoneNumber string
}

// Draft is the requester's input before the request is submitted.
type Draft struct {
	message string
	share   ContactShare
}

func NewDraft(message string, share ContactShare) (Draft, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return Draft{}, errs.Wrapf(ErrInvalidDraft, "message exceeds %d characters", MaxMessageLength)
	}

	share.PhoneNumber = strings.TrimSpace(share.PhoneNumber)
	if share.Phone && share.PhoneNumber == "" {
		return Draft{}, errs.Wrap(ErrInvalidDraft, "phone number required when sharing phone")
	}
	if !share.Phone {
		share.PhoneNumber = ""
	}

	return Draft{message: message, share: share}, nil
}

// DefaultDraft is the canned one-click request.
func DefaultDraft() Draft {
	return Draft{message: DefaultMessage}
}

func (d Draft) Message() string { return d.message }

// Contact holds the details the requester chose to share. Empty means not shared.
type Contact struct {
	Email string
	Phone string
}

func (d Draft) ResolveContact(requesterEmail string) Contact {
	var c Contact
	if d.share.Email {
		c.Email = strings.TrimSpace(requesterEmail)
	}
	if d.share.Phone {
		c.Phone = d.share.PhoneNumber
	}
	return c
}
