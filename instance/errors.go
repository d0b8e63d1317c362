package instance

import "errors"

var (
	// ErrNoLocks indicates a configuration with fewer than one lock.
	ErrNoLocks = errors.New("instance: need at least one lock")
	// ErrNoShips indicates a configuration with fewer than one ship.
	ErrNoShips = errors.New("instance: need at least one ship")
	// ErrNoChambers indicates a configuration with fewer than one chamber per lock.
	ErrNoChambers = errors.New("instance: need at least one chamber per lock")
)
