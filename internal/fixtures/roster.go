package fixtures

import (
	"fmt"
	"sort"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/employee"
)

// ==========================================
// DEFAULT ROSTER
// ==========================================

// DesignationRank orders designations by seniority for grid display.
var DesignationRank = map[string]int{
	"Manager":      1,
	"Head Chef":    2,
	"Supervisor":   3,
	"Sous Chef":    4,
	"Technician":   5,
	"Receptionist": 6,
	"Cook":         7,
	"Employee":     8,
	"Assistant":    9,
}

type rosterSeed struct {
	department  string
	designation string
	name        string
}

var defaultRoster = []rosterSeed{
	{"Front Desk", "Manager", "Sarah Johnson"},
	{"Front Desk", "Supervisor", "Michelle Owen"},
	{"Front Desk", "Receptionist", "Michael Clarke"},
	{"Front Desk", "Receptionist", "Ricky Ponting"},
	{"Housekeeping", "Supervisor", "David Wilson"},
	{"Housekeeping", "Employee", "Emily Davis"},
	{"Housekeeping", "Employee", "Maria Garcia"},
	{"Housekeeping", "Employee", "Anna Rodriguez"},
	{"Kitchen", "Head Chef", "Michelle Johns"},
	{"Kitchen", "Sous Chef", "James Miller"},
	{"Kitchen", "Cook", "Linda Martinez"},
	{"Maintenance", "Technician", "Robert Brown"},
}

// DefaultEmployees returns the demo roster in grid order: department
// alphabetically, then designation seniority. IDs are stable positional
// identifiers ("staff-0", "staff-1", …) so the default-shift rotation is
// reproducible across generations.
func DefaultEmployees() []employee.Employee {
	employees := make([]employee.Employee, 0, len(defaultRoster))
	for _, s := range defaultRoster {
		employees = append(employees, employee.Employee{
			Department:  s.department,
			Designation: s.designation,
			FullName:    s.name,
		})
	}
	sort.Stable(employee.ByRosterOrder{Employees: employees, Rank: DesignationRank})

	for i := range employees {
		employees[i].ID = fmt.Sprintf("staff-%d", i)
	}
	return employees
}
