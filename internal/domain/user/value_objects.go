package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"ride-together/internal/pkg/patch"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrInvalidDisplayName = errors.New("display name must be at most 50 characters")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// LocalPart is the part before '@'.
func (e Email) LocalPart() string {
	return localPart(e.value)
}

type Password struct {
	value string
}

// bcrypt ignores input beyond 72 bytes.
func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > 72 {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

const maxDisplayNameLength = 50

type DisplayName struct {
	value string
}

// NewDisplayName allows an empty name; ResolveDisplayName supplies a fallback.
func NewDisplayName(s string) (DisplayName, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxDisplayNameLength {
		return DisplayName{}, ErrInvalidDisplayName
	}
	return DisplayName{value: s}, nil
}

func (d DisplayName) Value() string { return d.value }

// ResolveDisplayName picks the name shown to other riders: the display
// name, else the e-mail local part, else fallback.
func ResolveDisplayName(displayName, email, fallback string) string {
	return patch.FirstNonBlank(displayName, localPart(strings.TrimSpace(email)), fallback)
}

func localPart(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return ""
	}
	return email[:at]
}
