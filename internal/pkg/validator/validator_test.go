package validator

import (
	"reflect"
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
	valid := []string{"2025-06-01", "2000-12-31"}
	invalid := []string{"2025-13-01", "2025-01-32", "2025/06/01", "01-06-2025", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"R1", "R2", "R3"}
	if !IsInSlice("R1", slice) {
		t.Errorf("IsInSlice('R1') = false, want true")
	}
	if IsInSlice("R4", slice) {
		t.Errorf("IsInSlice('R4') = true, want false")
	}
}

func TestMissingFrom(t *testing.T) {
	got := MissingFrom([]string{"R9", "R1", "R7"}, []string{"R1", "R2"})
	want := []string{"R9", "R7"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFrom() = %v, want %v", got, want)
	}
	if got := MissingFrom(nil, []string{"R1"}); got != nil {
		t.Errorf("MissingFrom(nil) = %v, want nil", got)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "mode", Message: "invalid"},
		{Field: "date", Message: "required"},
	}
	got := errs.Error()
	want := "mode: invalid; date: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "mode", Message: "invalid"},
		{Field: "date", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"mode": "invalid", "date": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
