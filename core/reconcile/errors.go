package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable marks a failure fetching either inventory (network, auth, parse).
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrRemovalFailed marks a removal the download client rejected.
	ErrRemovalFailed = errors.New("removal failed")
)

func sourceUnavailable(source string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, source, err)
}

func removalFailed(handle string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRemovalFailed, handle, err)
}
