package schedule

// Mutation operations over a month snapshot. Every operation is pure: the
// input slice is never modified, the result shares untouched entries with
// the input and deep-copies only the entry being edited (copy-on-write).
// Operations referencing an unknown employee ID or date key return the
// input unchanged; edits always originate from rendered, already-valid
// cells, so there is nothing useful to report.

// SetAttendance sets the attendance of one employee-day. Flipping to
// Present on a day with no shifts assigns the deterministic default shift;
// flipping to Absent clears the shift list.
func SetAttendance(entries []Entry, employeeID, dateKey string, status Attendance) []Entry {
	idx, rec, ok := locate(entries, employeeID, dateKey)
	if !ok {
		return entries
	}

	rec.Attendance = status
	switch status {
	case AttendanceAbsent:
		rec.Shifts = nil
	case AttendancePresent:
		if len(rec.Shifts) == 0 {
			day, ok := dayOfMonth(dateKey)
			if !ok {
				return entries
			}
			rec.Shifts = []ShiftKind{DefaultShift(idx, day)}
		}
	}
	return replace(entries, idx, dateKey, rec)
}

// SetShiftAt replaces the shift at index. Assigning All Day collapses the
// whole list to [All Day] regardless of index; it is mutually exclusive
// with every other kind.
func SetShiftAt(entries []Entry, employeeID, dateKey string, index int, kind ShiftKind) []Entry {
	idx, rec, ok := locate(entries, employeeID, dateKey)
	if !ok {
		return entries
	}

	if kind == ShiftAllDay {
		rec.Shifts = []ShiftKind{ShiftAllDay}
		return replace(entries, idx, dateKey, rec)
	}
	if index < 0 || index >= len(rec.Shifts) {
		return entries
	}
	rec.Shifts[index] = kind
	return replace(entries, idx, dateKey, rec)
}

// AddShift appends the first regular kind not already present. No-op when
// the list holds All Day, is at the cap, or already uses every regular
// kind (duplicates are never created).
func AddShift(entries []Entry, employeeID, dateKey string) []Entry {
	idx, rec, ok := locate(entries, employeeID, dateKey)
	if !ok {
		return entries
	}
	if len(rec.Shifts) >= MaxShiftsPerDay || contains(rec.Shifts, ShiftAllDay) {
		return entries
	}

	for _, kind := range RegularShiftKinds {
		if !contains(rec.Shifts, kind) {
			rec.Shifts = append(rec.Shifts, kind)
			return replace(entries, idx, dateKey, rec)
		}
	}
	return entries
}

// RemoveShift removes the shift at index. A list that becomes empty flips
// the record to Absent immediately; Normalize repeats the check at save
// time because direct edits can also empty a list.
func RemoveShift(entries []Entry, employeeID, dateKey string, index int) []Entry {
	idx, rec, ok := locate(entries, employeeID, dateKey)
	if !ok {
		return entries
	}
	if index < 0 || index >= len(rec.Shifts) {
		return entries
	}

	rec.Shifts = append(rec.Shifts[:index], rec.Shifts[index+1:]...)
	if len(rec.Shifts) == 0 {
		rec.Shifts = nil
		rec.Attendance = AttendanceAbsent
	}
	return replace(entries, idx, dateKey, rec)
}

// Normalize is the authoritative commit-time enforcement of the day-record
// invariant: every Present day with no shifts flips to Absent. Untouched
// snapshots are returned as-is.
func Normalize(entries []Entry) []Entry {
	out := entries
	copied := false
	for i, entry := range entries {
		for key, rec := range entry.Days {
			if rec.Attendance == AttendancePresent && len(rec.Shifts) == 0 {
				if !copied {
					out = Clone(entries)
					copied = true
				}
				rec.Attendance = AttendanceAbsent
				rec.Shifts = nil
				out[i].Days[key] = rec
			}
		}
	}
	return out
}

// Clone deep-copies a month snapshot.
func Clone(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, entry := range entries {
		out[i] = cloneEntry(entry)
	}
	return out
}

func cloneEntry(entry Entry) Entry {
	days := make(map[string]DayRecord, len(entry.Days))
	for key, rec := range entry.Days {
		if rec.Shifts != nil {
			shifts := make([]ShiftKind, len(rec.Shifts))
			copy(shifts, rec.Shifts)
			rec.Shifts = shifts
		}
		days[key] = rec
	}
	return Entry{Employee: entry.Employee, Days: days}
}

// locate finds the entry index and a deep copy of the day record, so the
// caller can mutate freely before replace stitches it back in.
func locate(entries []Entry, employeeID, dateKey string) (int, DayRecord, bool) {
	for i, entry := range entries {
		if entry.Employee.ID != employeeID {
			continue
		}
		rec, ok := entry.Days[dateKey]
		if !ok {
			return 0, DayRecord{}, false
		}
		if rec.Shifts != nil {
			shifts := make([]ShiftKind, len(rec.Shifts))
			copy(shifts, rec.Shifts)
			rec.Shifts = shifts
		}
		return i, rec, true
	}
	return 0, DayRecord{}, false
}

// replace returns a new snapshot with entries[idx].Days[dateKey] set to rec.
func replace(entries []Entry, idx int, dateKey string, rec DayRecord) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	entry := cloneEntry(entries[idx])
	entry.Days[dateKey] = rec
	out[idx] = entry
	return out
}

func contains(shifts []ShiftKind, kind ShiftKind) bool {
	for _, s := range shifts {
		if s == kind {
			return true
		}
	}
	return false
}

// dayOfMonth extracts the day component from a YYYY-MM-DD key.
func dayOfMonth(dateKey string) (int, bool) {
	if len(dateKey) != 10 {
		return 0, false
	}
	day := 0
	for _, c := range dateKey[8:] {
		if c < '0' || c > '9' {
			return 0, false
		}
		day = day*10 + int(c-'0')
	}
	return day, day >= 1
}
