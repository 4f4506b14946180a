package bisect

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the target key is not in the set.
	ErrNotFound = errors.New("key not found")

	// ErrUnsorted is returned by New when the keys are not in strictly
	// ascending order.
	ErrUnsorted = errors.New("keys must be in strictly ascending order")

	// ErrInvalidProbeBudget is returned when the configured probe budget
	// is not positive.
	ErrInvalidProbeBudget = errors.New("probe budget must be positive")
)

// ErrExhausted indicates that the probe budget was consumed before the
// candidate range emptied. It is a defined miss, not a fault: callers that
// only care about membership can treat it via errors.Is(err, ErrNotFound),
// while callers that need to distinguish a proven miss from an aborted one
// can use errors.As.
type ErrExhausted struct {
	Probes int
	Budget int
}

func (e *ErrExhausted) Error() string {
	return fmt.Sprintf("search exhausted: probe budget %d consumed after %d probes", e.Budget, e.Probes)
}

func (e *ErrExhausted) Unwrap() error { return ErrNotFound }
