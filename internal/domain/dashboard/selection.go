package dashboard

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/pkg/validator"
)

// DateMode selects how the date index is matched.
type DateMode string

const (
	DateModeDaily   DateMode = "Daily"
	DateModeMonthly DateMode = "Monthly"
)

// ParseDateMode accepts the mode case-insensitively.
func ParseDateMode(s string) (DateMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return DateModeDaily, true
	case "monthly":
		return DateModeMonthly, true
	default:
		return "", false
	}
}

// FilterSelection is a fully resolved user selection.
type FilterSelection struct {
	Mode   DateMode
	Date   time.Time // used when Mode is Daily
	Month  string    // used when Mode is Monthly
	Routes []string
	Areas  []string
}

type selectionKey struct {
	Mode   DateMode `json:"mode"`
	Period string   `json:"period"`
	Routes []string `json:"routes"`
	Areas  []string `json:"areas"`
}

// Key returns a canonical string for the selection, independent of the
// order routes and areas were picked in. Values are JSON-quoted, so no
// label can be mistaken for a separator.
func (s FilterSelection) Key() string {
	key := selectionKey{
		Mode:   s.Mode,
		Routes: sortedCopy(s.Routes),
		Areas:  sortedCopy(s.Areas),
	}
	switch s.Mode {
	case DateModeDaily:
		key.Period = s.Date.Format("2006-01-02")
	case DateModeMonthly:
		key.Period = s.Month
	}
	b, _ := json.Marshal(key) // strings only, cannot fail
	return string(b)
}

func sortedCopy(values []string) []string {
	sorted := append(make([]string, 0, len(values)), values...)
	slices.Sort(sorted)
	return sorted
}

// SelectionRequest is the raw selection as received from the shell.
// A nil Routes or Areas slice means "all values"; an empty non-nil slice
// selects nothing.
type SelectionRequest struct {
	Mode   string
	Date   string // YYYY-MM-DD
	Month  string
	Routes []string
	Areas  []string
}

func (r *SelectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Mode) {
		if _, ok := ParseDateMode(r.Mode); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "mode",
				Message: "mode must be Daily or Monthly",
			})
		}
	}

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
