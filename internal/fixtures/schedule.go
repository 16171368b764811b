package fixtures

import (
	"math/rand"
	"time"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/employee"
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/schedule"
	"github.com/cmlabs-hris/staff-roster-go/internal/pkg/dateutil"
)

// ==========================================
// MOCK SCHEDULE GENERATOR
// ==========================================

// presentProbability matches the product's synthetic data: roughly 85% of
// employee-days are Present.
const presentProbability = 0.85

// GenerateMonthSchedule materializes one entry per employee with one day
// record per calendar day of the month. Present days get exactly one shift
// from a rotation keyed by (employee index, day of month). Output is
// deterministic for a given (seed, month) pair.
func GenerateMonthSchedule(month time.Time, employees []employee.Employee, seed int64) []schedule.Entry {
	rng := rand.New(rand.NewSource(monthSeed(seed, month)))
	days := dateutil.MonthDays(month)

	entries := make([]schedule.Entry, 0, len(employees))
	for idx, emp := range employees {
		records := make(map[string]schedule.DayRecord, len(days))
		for _, d := range days {
			rec := schedule.DayRecord{Attendance: schedule.AttendanceAbsent}
			if rng.Float64() < presentProbability {
				kind := schedule.AllShiftKinds[(idx+d.Day())%len(schedule.AllShiftKinds)]
				rec = schedule.DayRecord{
					Attendance: schedule.AttendancePresent,
					Shifts:     []schedule.ShiftKind{kind},
				}
			}
			records[dateutil.DateKey(d)] = rec
		}
		entries = append(entries, schedule.Entry{Employee: emp, Days: records})
	}
	return entries
}

// monthSeed folds the month into the configured seed so every month gets a
// distinct but reproducible stream.
func monthSeed(seed int64, month time.Time) int64 {
	return seed*1_000_000 + int64(month.Year())*100 + int64(month.Month())
}
