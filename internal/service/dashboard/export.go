package dashboard

import (
	"fmt"
	"strings"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dashboard"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportSheet struct {
	name string
	rows [][]interface{}
}

// buildWorkbook writes every table of the view model to its own sheet.
func buildWorkbook(vm *dashboard.ViewModel) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheets := []exportSheet{
		{name: "Summary", rows: summaryRows(vm)},
		{name: "Product Mix", rows: mixRows(vm.Summary.ProductMix)},
		{name: "Areas", rows: areaRows(vm.Summary.Areas)},
		{name: "Bread SKUs", rows: skuRows(vm.Bread.SKUBreakdown)},
		{name: "Biscuits", rows: skuRows(vm.Biscuits.SKUBreakdown)},
		{name: "Loading Compliance", rows: complianceRows(vm.Biscuits.LoadingCompliance)},
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return nil, err
		}

		for r, row := range sh.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			values := row
			if err := f.SetSheetRow(sh.name, cell, &values); err != nil {
				return nil, fmt.Errorf("sheet %q row %d: %w", sh.name, r+1, err)
			}
		}
		if err := f.SetColWidth(sh.name, "A", "D", 24); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summaryRows(vm *dashboard.ViewModel) [][]interface{} {
	k := vm.Summary.KPIs
	sel := vm.Selection

	period := sel.Date
	if sel.Mode == dashboard.DateModeMonthly {
		period = sel.Month
	}

	return [][]interface{}{
		{"Metric", "Value"},
		{"Total Orders", k.TotalOrdered},
		{"Total Loaded", k.TotalLoaded},
		{"Departure Compliance %", k.DepartureCompliancePct},
		{"Order Fill %", k.OrderFillPct},
		{},
		{"Date Filter", string(sel.Mode)},
		{"Period", period},
		{"Routes", strings.Join(sel.Routes, ", ")},
		{"Areas", strings.Join(sel.Areas, ", ")},
		{"Snapshot", vm.Snapshot.ID},
		{"Loaded At", vm.Snapshot.LoadedAt},
	}
}

func mixRows(mix []dashboard.MixSlice) [][]interface{} {
	rows := [][]interface{}{{"SKU", "Ordered", "Share %"}}
	for _, m := range mix {
		rows = append(rows, []interface{}{string(m.SKU), m.Ordered, m.SharePct})
	}
	return rows
}

func areaRows(areas dashboard.AreaBreakdown) [][]interface{} {
	rows := [][]interface{}{{"AREA", "Total Ordered", "Total Loaded", "Variance"}}
	for _, a := range areas.Rows {
		row := []interface{}{a.Area, a.TotalOrdered, "n/a", "n/a"}
		if a.TotalLoaded != nil && a.Variance != nil {
			row[2] = *a.TotalLoaded
			row[3] = *a.Variance
		}
		rows = append(rows, row)
	}
	return rows
}

func skuRows(b dashboard.SKUBreakdown) [][]interface{} {
	rows := [][]interface{}{{"SKU", "Ordered", "Loaded"}}
	for _, r := range b.Rows {
		rows = append(rows, []interface{}{string(r.SKU), r.Ordered, r.Loaded})
	}
	return append(rows, []interface{}{"Total", b.TotalOrdered, b.TotalLoaded})
}

func complianceRows(d dashboard.ComplianceDistribution) [][]interface{} {
	rows := [][]interface{}{{"LOADING COMPLIANCE STATUS", "Count", "Share %"}}
	for _, s := range d.Slices {
		rows = append(rows, []interface{}{s.Status, s.Count, s.SharePct})
	}
	return rows
}

func exportFilename(sel dashboard.SelectionResponse) string {
	period := sel.Date
	if sel.Mode == dashboard.DateModeMonthly {
		period = sel.Month
	}
	period = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, period)
	if period == "" {
		period = "all"
	}
	return fmt.Sprintf("despatch-dashboard-%s-%s.xlsx", strings.ToLower(string(sel.Mode)), period)
}
