package employee

// Employee is immutable reference data for a dataset generation: once a
// roster is materialized its identity fields never change.
type Employee struct {
	ID          string
	Department  string
	Designation string
	FullName    string
}

// ByRosterOrder sorts employees the way the schedule grid lists them:
// department alphabetically, then designation seniority.
type ByRosterOrder struct {
	Employees []Employee
	Rank      map[string]int
}

func (s ByRosterOrder) Len() int      { return len(s.Employees) }
func (s ByRosterOrder) Swap(i, j int) { s.Employees[i], s.Employees[j] = s.Employees[j], s.Employees[i] }
func (s ByRosterOrder) Less(i, j int) bool {
	a, b := s.Employees[i], s.Employees[j]
	if a.Department != b.Department {
		return a.Department < b.Department
	}
	return s.rank(a.Designation) < s.rank(b.Designation)
}

func (s ByRosterOrder) rank(designation string) int {
	if r, ok := s.Rank[designation]; ok {
		return r
	}
	return 999
}
