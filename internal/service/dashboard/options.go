package dashboard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dashboard"
	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/validator"
)

// distinct returns the non-blank values in first-seen order.
func distinct(n int, value func(i int) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := 0; i < n; i++ {
		v := value(i)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func distinctRoutes(t *dataset.Tables) []string {
	return distinct(len(t.DateIndex), func(i int) string { return t.DateIndex[i].Route })
}

func distinctMonths(t *dataset.Tables) []string {
	return distinct(len(t.DateIndex), func(i int) string { return t.DateIndex[i].Month })
}

func distinctAreas(t *dataset.Tables) []string {
	return distinct(len(t.Orders), func(i int) string { return t.Orders[i].Area })
}

// distinctDates returns the index dates in ascending order.
func distinctDates(t *dataset.Tables) []string {
	dates := distinct(len(t.DateIndex), func(i int) string {
		if d := t.DateIndex[i].Date; d != nil {
			return d.Format("2006-01-02")
		}
		return ""
	})
	sort.Strings(dates)
	return dates
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// defaultSelection is Daily for today with every route and area picked.
func defaultSelection(t *dataset.Tables, now time.Time) dashboard.FilterSelection {
	return dashboard.FilterSelection{
		Mode:   dashboard.DateModeDaily,
		Date:   today(now),
		Routes: distinctRoutes(t),
		Areas:  distinctAreas(t),
	}
}

// resolveSelection validates req against the loaded tables and fills in
// defaults for anything left unset.
func resolveSelection(req dashboard.SelectionRequest, t *dataset.Tables, now time.Time) (dashboard.FilterSelection, error) {
	if err := req.Validate(); err != nil {
		return dashboard.FilterSelection{}, err
	}

	sel := defaultSelection(t, now)

	if !validator.IsEmpty(req.Mode) {
		sel.Mode, _ = dashboard.ParseDateMode(req.Mode)
	}

	switch sel.Mode {
	case dashboard.DateModeDaily:
		if !validator.IsEmpty(req.Date) {
			d, _ := validator.IsValidDate(strings.TrimSpace(req.Date))
			sel.Date = d
		}
	case dashboard.DateModeMonthly:
		months := distinctMonths(t)
		month := strings.TrimSpace(req.Month)
		switch {
		case month != "":
			if !validator.IsInSlice(month, months) {
				return dashboard.FilterSelection{}, fmt.Errorf("%w: %s", dashboard.ErrUnknownMonth, month)
			}
			sel.Month = month
		case len(months) > 0:
			sel.Month = months[0]
		}
		sel.Date = time.Time{}
	}

	if req.Routes != nil {
		routes := trimAll(expandList(req.Routes, sel.Routes))
		if missing := validator.MissingFrom(routes, sel.Routes); len(missing) > 0 {
			return dashboard.FilterSelection{}, fmt.Errorf("%w: %s", dashboard.ErrUnknownRoute, strings.Join(missing, ", "))
		}
		sel.Routes = routes
	}

	if req.Areas != nil {
		areas := trimAll(expandList(req.Areas, sel.Areas))
		if missing := validator.MissingFrom(areas, sel.Areas); len(missing) > 0 {
			return dashboard.FilterSelection{}, fmt.Errorf("%w: %s", dashboard.ErrUnknownArea, strings.Join(missing, ", "))
		}
		sel.Areas = areas
	}

	return sel, nil
}

// expandList splits a lone comma separated value into its labels. Repeated
// values, and a lone value that is itself an observed label such as
// "Harare, Mbare", are taken as given.
func expandList(values, observed []string) []string {
	if len(values) != 1 {
		return values
	}
	v := strings.TrimSpace(values[0])
	if !strings.Contains(v, ",") || validator.IsInSlice(v, observed) {
		return values
	}
	return strings.Split(v, ",")
}

// trimAll trims every value and drops blanks and repeats. The result is
// never nil so an explicit empty selection stays empty.
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func buildOptions(snap *dataset.Snapshot, now time.Time) *dashboard.OptionsResponse {
	t := snap.Tables
	return &dashboard.OptionsResponse{
		Snapshot:   snapshotResponse(snap),
		Modes:      []dashboard.DateMode{dashboard.DateModeDaily, dashboard.DateModeMonthly},
		Routes:     distinctRoutes(t),
		Areas:      distinctAreas(t),
		Months:     distinctMonths(t),
		Dates:      distinctDates(t),
		Default:    selectionResponse(defaultSelection(t, now)),
		LoadReport: t.Report,
	}
}
