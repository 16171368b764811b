// Package clock abstracts "today" behind a single injected dependency so
// month-allowance checks, today-highlighting and history timestamps can be
// pinned in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the live wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
