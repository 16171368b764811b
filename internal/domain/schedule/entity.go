package schedule

import (
	"github.com/cmlabs-hris/staff-roster-go/internal/domain/employee"
)

type Attendance string

const (
	AttendancePresent Attendance = "Present"
	AttendanceAbsent  Attendance = "Absent"
)

var AttendanceValues = []string{
	string(AttendancePresent),
	string(AttendanceAbsent),
}

type ShiftKind string

const (
	ShiftMorning   ShiftKind = "Morning"
	ShiftMiddle    ShiftKind = "Middle"
	ShiftAfternoon ShiftKind = "Afternoon"
	ShiftNight     ShiftKind = "Night"
	ShiftAllDay    ShiftKind = "All Day" // exclusive: collapses the list to itself
)

// RegularShiftKinds are the assignable kinds excluding All Day, in rotation
// order. Default-shift assignment and the add-shift fill order both index
// into this slice.
var RegularShiftKinds = []ShiftKind{
	ShiftMorning,
	ShiftMiddle,
	ShiftAfternoon,
	ShiftNight,
}

// AllShiftKinds is the rotation used by the mock generator.
var AllShiftKinds = []ShiftKind{
	ShiftMorning,
	ShiftMiddle,
	ShiftAfternoon,
	ShiftNight,
	ShiftAllDay,
}

var ShiftKindValues = []string{
	string(ShiftMorning),
	string(ShiftMiddle),
	string(ShiftAfternoon),
	string(ShiftNight),
	string(ShiftAllDay),
}

// MaxShiftsPerDay caps the shift list of a single day record.
const MaxShiftsPerDay = 4

// DayRecord is one employee-day: attendance plus an ordered shift list.
// Invariant: Absent implies an empty shift list, and Present implies a
// non-empty one. The invariant may be broken transiently while editing; the
// save operation re-establishes it.
type DayRecord struct {
	Attendance Attendance
	Shifts     []ShiftKind
}

// Entry is one employee's schedule for one calendar month, keyed by
// YYYY-MM-DD date keys covering exactly the days of that month.
type Entry struct {
	Employee employee.Employee
	Days     map[string]DayRecord
}

// DefaultShift returns the deterministic shift assigned when a day flips to
// Present with no shifts: a stable rotation over the regular kinds keyed by
// (employee index, day of month), so re-rendering is reproducible.
func DefaultShift(employeeIndex, dayOfMonth int) ShiftKind {
	return RegularShiftKinds[(employeeIndex+dayOfMonth)%len(RegularShiftKinds)]
}
