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
	if _, ok := IsValidDate("2024-05-01"); !ok {
		t.Error("IsValidDate(\"2024-05-01\") = false, want true")
	}
	invalid := []string{"2024-5-1", "01-05-2024", "2024-13-01", "not-a-date", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP001", "EMP1234", "EMP999999"}
	invalid := []string{"EMP1", "emp001", "EMP0000001", "E001", "EMP 01", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "must be between 1 and 12"},
		{Field: "year", Message: "is required"},
	}
	m := errs.ToMap()
	if m["month"] != "must be between 1 and 12" || m["year"] != "is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "month: must be between 1 and 12; year: is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
