package tracker

import "errors"

var (
	// ErrNotTracking is returned when no transaction is being followed.
	ErrNotTracking = errors.New("no transaction is being tracked")

	errStaleResult = errors.New("result belongs to a superseded tracker")
)
