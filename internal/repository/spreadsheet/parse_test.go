package spreadsheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	june1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input cell
		want  *time.Time
		ok    bool
	}{
		{"blank", cell{}, nil, true},
		{"iso", cell{text: "2025-06-01", raw: "2025-06-01"}, &june1, true},
		{"excel serial", cell{text: "06-01-25", raw: "45809"}, &june1, true},
		{"serial with time", cell{text: "06-01-25 13:00", raw: "45809.54"}, &june1, true},
		{"month first", cell{text: "06/01/2025", raw: "06/01/2025"}, &june1, true},
		{"rfc3339", cell{text: "2025-06-01T10:00:00+02:00", raw: "2025-06-01T10:00:00+02:00"}, &june1, true},
		{"long form", cell{text: "June 1, 2025", raw: "June 1, 2025"}, &june1, true},
		{"garbage", cell{text: "soon", raw: "soon"}, nil, false},
		{"serial out of range", cell{text: "-5", raw: "-5"}, nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := parseDate(c.input)
			assert.Equal(t, c.ok, ok)
			if c.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, *c.want, *got)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		input string
		want  int64
		ok    bool
	}{
		{"", 0, true},
		{"-", 0, true},
		{"12", 12, true},
		{"12.6", 13, true},
		{"1,250", 1250, true},
		{"-4", 0, false},
		{"n/a", 0, false},
	}
	for _, c := range cases {
		got, ok := parseQuantity(cell{text: c.input, raw: c.input})
		if got != c.want || ok != c.ok {
			t.Errorf("parseQuantity(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestParseKey(t *testing.T) {
	cases := map[string]string{
		"1001":   "1001",
		"1001.0": "1001",
		"L-7":    "L-7",
		"10.5":   "10.5",
	}
	for input, want := range cases {
		if got := parseKey(cell{text: input, raw: input}); got != want {
			t.Errorf("parseKey(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "BI WHITE", normalizeHeader("  bi   White "))
	assert.Equal(t, "DEPARTURE COMPLIANCE STATUS", normalizeHeader("Departure Compliance Status"))
}
