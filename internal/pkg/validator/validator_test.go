package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-03-05", "2024-02-29", "2000-12-31"}
	invalid := []string{"2025-3-5", "2025-02-30", "05-03-2025", "2025-03-05T00:00:00Z", "", "not-a-date"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2025-03", "2026-01"}
	invalid := []string{"2025-13", "2025-3", "2025-03-05", ""}
	for _, s := range valid {
		if _, ok := IsValidMonth(s); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Morning", "Middle", "Afternoon", "Night"}
	if !IsInSlice("Middle", slice) {
		t.Error("IsInSlice should find Middle")
	}
	if IsInSlice("All Day", slice) {
		t.Error("IsInSlice should not find All Day")
	}
	if IsInSlice("morning", slice) {
		t.Error("IsInSlice must be case-sensitive")
	}
}
