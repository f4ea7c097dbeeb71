package assignments

import "errors"

var (
	// ErrQueryFailed is returned when the assignments query cannot be executed.
	ErrQueryFailed = errors.New("assignments: query failed")

	// ErrScanFailed is returned when a row cannot be decoded into an assignment.
	ErrScanFailed = errors.New("assignments: failed to scan row")
)
