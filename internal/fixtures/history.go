package fixtures

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/history"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

// ==========================================
// MOCK ACTIVITY LOG
// ==========================================

var historyActorEmails = []string{
	"owner@hotel.com",
	"manager@hotel.com",
	"supervisor@hotel.com",
}

// GenerateMonthHistory seeds 8-12 plausible activity-log entries for a past
// month, newest first. Timestamps and messages are deterministic for a given
// (seed, month) pair; only the entry IDs are fresh.
func GenerateMonthHistory(month time.Time, seed int64) []history.Entry {
	rng := rand.New(rand.NewSource(monthSeed(seed, month) + 7))
	employees := DefaultEmployees()
	days := dateutil.MonthDays(month)

	count := 8 + rng.Intn(5)
	entries := make([]history.Entry, 0, count)
	for i := 0; i < count; i++ {
		occurred := days[rng.Intn(len(days))].
			Add(time.Duration(rng.Intn(24)) * time.Hour).
			Add(time.Duration(rng.Intn(60)) * time.Minute)

		emp := employees[rng.Intn(len(employees))]
		changed := days[rng.Intn(len(days))]
		from := schedule.AllShiftKinds[rng.Intn(len(schedule.AllShiftKinds))]
		to := schedule.AllShiftKinds[rng.Intn(len(schedule.AllShiftKinds))]

		var message string
		switch {
		case i == 0:
			message = fmt.Sprintf("Created schedule for %s", month.Format("January 2006"))
		case rng.Intn(2) == 0:
			message = fmt.Sprintf("Changed %s's shift on %s from %s to %s",
				emp.FullName, changed.Format("02/01/2006"), from, to)
		default:
			message = fmt.Sprintf("Updated %s's schedule on %s",
				emp.FullName, changed.Format("02/01/2006"))
		}

		entries = append(entries, history.Entry{
			ID:         uuid.NewString(),
			ActorEmail: historyActorEmails[rng.Intn(len(historyActorEmails))],
			OccurredAt: occurred,
			Message:    message,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})
	return entries
}
