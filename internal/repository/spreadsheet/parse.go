package spreadsheet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Month-first layouts come before day-first ones so that ambiguous values
// such as 06/01/2025 read as June 1st.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"1-2-06",
	"01-02-2006",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
	"2 Jan 2006",
	"02 Jan 2006",
	"2-Jan-2006",
	"2-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Excel serials outside this range are not calendar dates.
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// parseDate reads a date cell. Blank cells yield (nil, true); values that
// cannot be read yield (nil, false). Results are truncated to the UTC day.
func parseDate(c cell) (*time.Time, bool) {
	if c.raw == "" && c.text == "" {
		return nil, true
	}

	if serial, err := strconv.ParseFloat(c.raw, 64); err == nil {
		if serial >= minExcelSerial && serial <= maxExcelSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				d := dateOnly(t)
				return &d, true
			}
		}
		return nil, false
	}

	for _, value := range []string{c.raw, c.text} {
		if value == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				d := dateOnly(t)
				return &d, true
			}
		}
	}
	return nil, false
}

// parseQuantity reads a quantity cell. Blank cells count as 0; values that
// are not non-negative numbers count as 0 and report false.
func parseQuantity(c cell) (int64, bool) {
	value := c.raw
	if value == "" {
		value = c.text
	}
	value = strings.ReplaceAll(value, ",", "")
	if value == "" || value == "-" {
		return 0, true
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return int64(math.Round(f)), true
}

// parseKey reads a join key. Whole numbers stored as floats ("1001.0")
// collapse to their integer form so keys match across extracts.
func parseKey(c cell) string {
	value := c.raw
	if value == "" {
		value = c.text
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return value
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
