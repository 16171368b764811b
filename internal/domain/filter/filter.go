// Package filter implements the multi-criterion inclusion filter shared by
// the schedule grid and the report view.
package filter

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/staff-roster-go/internal/domain/employee"
)

type Type string

const (
	TypeDepartment  Type = "department"
	TypeDesignation Type = "designation"
	TypeName        Type = "name"
)

var TypeValues = []string{
	string(TypeDepartment),
	string(TypeDesignation),
	string(TypeName),
}

type Filter struct {
	Type  Type
	Value string
	Label string
}

// Set combines filters with logical OR across every entry, including
// entries of different types: {department: Kitchen} + {name: Bob} matches
// any Kitchen employee OR anyone named Bob. This mirrors the product
// behavior; see DESIGN.md before changing it to AND.
type Set []Filter

// Matches reports whether emp passes the set. An empty set matches
// everyone. Comparison is exact and case-sensitive.
func (s Set) Matches(emp employee.Employee) bool {
	if len(s) == 0 {
		return true
	}
	for _, f := range s {
		switch f.Type {
		case TypeDepartment:
			if emp.Department == f.Value {
				return true
			}
		case TypeDesignation:
			if emp.Designation == f.Value {
				return true
			}
		case TypeName:
			if emp.FullName == f.Value {
				return true
			}
		}
	}
	return false
}

// Values returns the values of every filter of the given type.
func (s Set) Values(t Type) []string {
	var out []string
	for _, f := range s {
		if f.Type == t {
			out = append(out, f.Value)
		}
	}
	return out
}

// Parse builds a filter from a "type=value" argument.
func Parse(arg string) (Filter, error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return Filter{}, fmt.Errorf("invalid filter %q, expected type=value", arg)
	}
	t := Type(strings.TrimSpace(parts[0]))
	switch t {
	case TypeDepartment, TypeDesignation, TypeName:
	default:
		return Filter{}, fmt.Errorf("unknown filter type %q, expected one of: %s",
			parts[0], strings.Join(TypeValues, ", "))
	}
	value := parts[1]
	return Filter{Type: t, Value: value, Label: value}, nil
}
