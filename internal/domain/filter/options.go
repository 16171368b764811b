package filter

import (
	"sort"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/employee"
)

// Options are the choosable filter values for a roster, deduplicated and
// alphabetically sorted.
type Options struct {
	Departments  []string
	Designations []string
	Names        []NameOption
}

// NameOption carries the context shown next to a name in the picker.
type NameOption struct {
	Name        string
	Department  string
	Designation string
}

// BuildOptions collects filter options from the employees of a snapshot.
func BuildOptions(employees []employee.Employee) Options {
	deptSet := make(map[string]struct{})
	desigSet := make(map[string]struct{})
	names := make([]NameOption, 0, len(employees))

	for _, emp := range employees {
		deptSet[emp.Department] = struct{}{}
		desigSet[emp.Designation] = struct{}{}
		names = append(names, NameOption{
			Name:        emp.FullName,
			Department:  emp.Department,
			Designation: emp.Designation,
		})
	}

	opts := Options{
		Departments:  sortedKeys(deptSet),
		Designations: sortedKeys(desigSet),
		Names:        names,
	}
	sort.Slice(opts.Names, func(i, j int) bool {
		return opts.Names[i].Name < opts.Names[j].Name
	})
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
