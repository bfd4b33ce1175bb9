package interfaces

import "time"

// Clock abstracts the time source so date-driven lifecycle rules are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
