package dashboard

import (
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dashboard"
	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
)

// Resolve narrows orders and despatch to the selection.
//
// The date index rows matching the period and one of the selected routes
// give the link set L. Orders are kept when their link is in L and their
// area is selected. Despatch rows carry no area, so they are kept on link
// alone. An empty area selection empties both outputs. The inputs are
// never modified.
func Resolve(
	index []dataset.DateIndexRecord,
	orders []dataset.OrderRecord,
	despatch []dataset.DespatchRecord,
	sel dashboard.FilterSelection,
) ([]dataset.OrderRecord, []dataset.DespatchRecord) {
	links := resolveLinks(index, sel)
	areas := toSet(sel.Areas)

	filteredOrders := make([]dataset.OrderRecord, 0)
	filteredDespatch := make([]dataset.DespatchRecord, 0)
	if len(links) == 0 || len(areas) == 0 {
		return filteredOrders, filteredDespatch
	}

	for _, o := range orders {
		if _, ok := links[o.Link]; !ok {
			continue
		}
		if _, ok := areas[o.Area]; !ok {
			continue
		}
		filteredOrders = append(filteredOrders, o)
	}

	for _, d := range despatch {
		if _, ok := links[d.Link]; ok {
			filteredDespatch = append(filteredDespatch, d)
		}
	}

	return filteredOrders, filteredDespatch
}

// resolveLinks returns the links of index rows inside the selected period
// and on a selected route. Blank links never join.
func resolveLinks(index []dataset.DateIndexRecord, sel dashboard.FilterSelection) map[string]struct{} {
	routes := toSet(sel.Routes)
	links := make(map[string]struct{})

	for _, row := range index {
		if row.Link == "" || !inPeriod(row, sel) {
			continue
		}
		if _, ok := routes[row.Route]; !ok {
			continue
		}
		links[row.Link] = struct{}{}
	}
	return links
}

// inPeriod never matches rows without a date or month.
func inPeriod(row dataset.DateIndexRecord, sel dashboard.FilterSelection) bool {
	switch sel.Mode {
	case dashboard.DateModeDaily:
		return row.Date != nil && sameDay(*row.Date, sel.Date)
	case dashboard.DateModeMonthly:
		return row.Month != "" && row.Month == sel.Month
	default:
		return false
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
