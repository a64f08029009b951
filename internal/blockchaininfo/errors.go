package blockchaininfo

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFoundOrNetwork is returned when the API cannot be reached or
	// answers with a non-success status.
	ErrNotFoundOrNetwork = errors.New("not found or network error")
	// ErrRateLimited is returned when the API keeps answering 429 after the retry.
	ErrRateLimited = errors.New("rate limited")
	// ErrEmptyListing is returned when the unconfirmed listing has no entries.
	ErrEmptyListing = errors.New("unconfirmed transaction listing is empty")
)

// StatusError is a non-success HTTP response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: GET %s returned %d", ErrNotFoundOrNetwork, e.Path, e.StatusCode)
}

// Is matches ErrNotFoundOrNetwork for every status and ErrRateLimited for 429.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFoundOrNetwork:
		return true
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}
