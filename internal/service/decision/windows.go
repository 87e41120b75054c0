package decision

import (
	"errors"
	"fmt"
	"time"
)

var ErrWindowOrdering = errors.New("delay threshold must not be shorter than the tolerance window")

// Windows holds the two reminder timing durations. Tolerance is the
// half-width of the on-time window around a scheduled instant; Delay is how
// long past the scheduled instant a caregiver delay alert becomes due.
// The two windows never overlap: Delay >= Tolerance is enforced here.
type Windows struct {
	Tolerance time.Duration
	Delay     time.Duration
}

func NewWindows(toleranceMinutes, delayThresholdMinutes int) (Windows, error) {
	if toleranceMinutes <= 0 {
		return Windows{}, fmt.Errorf("tolerance must be positive, got %d", toleranceMinutes)
	}
	if delayThresholdMinutes < toleranceMinutes {
		return Windows{}, fmt.Errorf("%w: tolerance=%dm delay=%dm", ErrWindowOrdering, toleranceMinutes, delayThresholdMinutes)
	}

	return Windows{
		Tolerance: time.Duration(toleranceMinutes) * time.Minute,
		Delay:     time.Duration(delayThresholdMinutes) * time.Minute,
	}, nil
}
