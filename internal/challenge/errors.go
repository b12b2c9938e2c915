package challenge

import "errors"

var (
	// ErrEmptyUserID is returned when a caller passes an empty user identifier.
	ErrEmptyUserID = errors.New("user id must not be empty")

	// ErrBadDay is returned for a date string that is not a valid YYYY-MM-DD day.
	ErrBadDay = errors.New("invalid calendar day, expected YYYY-MM-DD")

	// ErrAlreadyCounted is returned by Advance when the streak record already
	// reflects a completion on (or after) the given day. The caller's
	// duplicate-completion guard should make this unreachable; it exists so a
	// missed guard surfaces as a conflict instead of a double increment.
	ErrAlreadyCounted = errors.New("completion already counted for this day")
)
