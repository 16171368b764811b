package history

import "time"

// Entry is one line of the activity log: who changed what, when.
type Entry struct {
	ID         string
	ActorEmail string
	OccurredAt time.Time
	Message    string
}
