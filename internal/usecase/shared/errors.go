package shared

import (
	"ride-together/internal/infra"
	"ride-together/internal/pkg/errs"
)

// Errors shared by the command and query sides.
var (
	ErrSlotNotFound    = errs.New("slot not found")
	ErrBookingNotFound = errs.New("booking request not found")
	ErrUserNotFound    = errs.New("user not found")

	// ErrStoreUnavailable marks every persistence failure that is not a
	// domain outcome.
	ErrStoreUnavailable = errs.ErrStoreUnavailable
)

// TranslateNotFound maps a repository NOT_FOUND to sentinel and passes
// any other error through.
func TranslateNotFound(err error, sentinel error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
