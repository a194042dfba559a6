package dashboard

import (
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dashboard"
	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
)

// Render builds the view model for one selection over one snapshot.
// It has no side effects; identical inputs give identical output.
func Render(snap *dataset.Snapshot, sel dashboard.FilterSelection) *dashboard.ViewModel {
	tables := snap.Tables
	orders, despatch := Resolve(tables.DateIndex, tables.Orders, tables.Despatch, sel)

	breadSKUs := skuBreakdown(dataset.CategoryBread, orders, despatch)

	return &dashboard.ViewModel{
		Snapshot:  snapshotResponse(snap),
		Selection: selectionResponse(sel),
		Counts: dashboard.RowCounts{
			Orders:   len(orders),
			Despatch: len(despatch),
		},
		Summary: dashboard.SummaryPage{
			KPIs:         computeKPIs(orders, despatch),
			ProductMix:   productMix(orders),
			SKUBreakdown: breadSKUs,
			Areas:        areaBreakdown(orders, despatch, tables.DespatchHasArea),
		},
		Bread: dashboard.BreadPage{
			SKUBreakdown: breadSKUs,
		},
		Biscuits: dashboard.BiscuitsPage{
			SKUBreakdown:      skuBreakdown(dataset.CategoryBiscuit, orders, despatch),
			LoadingCompliance: complianceDistribution(despatch),
		},
	}
}

func snapshotResponse(snap *dataset.Snapshot) dashboard.SnapshotResponse {
	sources := snap.Sources
	if sources == nil {
		sources = []dataset.SourceInfo{}
	}
	return dashboard.SnapshotResponse{
		ID:       snap.ID,
		LoadedAt: snap.LoadedAt.UTC().Format(time.RFC3339),
		Sources:  sources,
	}
}

func selectionResponse(sel dashboard.FilterSelection) dashboard.SelectionResponse {
	resp := dashboard.SelectionResponse{
		Mode:   sel.Mode,
		Routes: nonNil(sel.Routes),
		Areas:  nonNil(sel.Areas),
	}
	switch sel.Mode {
	case dashboard.DateModeDaily:
		resp.Date = sel.Date.Format("2006-01-02")
	case dashboard.DateModeMonthly:
		resp.Month = sel.Month
	}
	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
