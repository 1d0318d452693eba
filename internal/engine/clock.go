package engine

import "time"

// Clock abstracts wall-clock reads so cancellation rewards stay deterministic
// in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
