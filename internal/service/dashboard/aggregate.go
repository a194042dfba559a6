package dashboard

import (
	"sort"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dashboard"
	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
)

// percent returns part/whole*100, or 0 when whole is not positive.
func percent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

func sumOrdered(orders []dataset.OrderRecord, skus []dataset.SKU) int64 {
	var total int64
	for _, o := range orders {
		for _, sku := range skus {
			total += o.Quantity(sku)
		}
	}
	return total
}

func sumLoaded(despatch []dataset.DespatchRecord, skus []dataset.SKU) int64 {
	var total int64
	for _, d := range despatch {
		for _, sku := range skus {
			total += d.Quantity(sku)
		}
	}
	return total
}

// computeKPIs returns the Summary cards. Totals cover bread SKUs only.
func computeKPIs(orders []dataset.OrderRecord, despatch []dataset.DespatchRecord) dashboard.KPIs {
	bread := dataset.BreadSKUs()
	totalOrdered := sumOrdered(orders, bread)
	totalLoaded := sumLoaded(despatch, bread)

	onTime := 0
	for _, d := range despatch {
		if d.OnTime() {
			onTime++
		}
	}

	kpis := dashboard.KPIs{
		TotalOrdered:           totalOrdered,
		TotalLoaded:            totalLoaded,
		DepartureCompliancePct: percent(float64(onTime), float64(len(despatch))),
		OrderFillPct:           percent(float64(totalLoaded), float64(totalOrdered)),
		DespatchCount:          len(despatch),
		OnTimeCount:            onTime,
	}
	kpis.Display = dashboard.KPIDisplay{
		TotalOrdered:        formatCount(kpis.TotalOrdered),
		TotalLoaded:         formatCount(kpis.TotalLoaded),
		DepartureCompliance: formatPercent(kpis.DepartureCompliancePct),
		OrderFill:           formatPercent(kpis.OrderFillPct),
	}
	return kpis
}

// skuBreakdown sums every SKU of the category, keeping declared order.
func skuBreakdown(category dataset.Category, orders []dataset.OrderRecord, despatch []dataset.DespatchRecord) dashboard.SKUBreakdown {
	skus := dataset.SKUsFor(category)
	breakdown := dashboard.SKUBreakdown{
		Category: category,
		Rows:     make([]dashboard.SKURow, 0, len(skus)),
	}

	for _, sku := range skus {
		row := dashboard.SKURow{
			SKU:     sku,
			Ordered: sumOrdered(orders, []dataset.SKU{sku}),
			Loaded:  sumLoaded(despatch, []dataset.SKU{sku}),
		}
		breakdown.TotalOrdered += row.Ordered
		breakdown.TotalLoaded += row.Loaded
		breakdown.Rows = append(breakdown.Rows, row)
	}
	return breakdown
}

// productMix is each bread SKU's share of ordered bread.
func productMix(orders []dataset.OrderRecord) []dashboard.MixSlice {
	bread := dataset.BreadSKUs()
	total := sumOrdered(orders, bread)

	mix := make([]dashboard.MixSlice, 0, len(bread))
	for _, sku := range bread {
		ordered := sumOrdered(orders, []dataset.SKU{sku})
		mix = append(mix, dashboard.MixSlice{
			SKU:      sku,
			Ordered:  ordered,
			SharePct: percent(float64(ordered), float64(total)),
		})
	}
	return mix
}

// areaBreakdown totals ordered bread per area, sorted by area label.
// Loaded and variance are filled only when despatch rows carry an area;
// otherwise they stay nil rather than borrowing despatch grand totals.
func areaBreakdown(orders []dataset.OrderRecord, despatch []dataset.DespatchRecord, despatchHasArea bool) dashboard.AreaBreakdown {
	bread := dataset.BreadSKUs()

	ordered := make(map[string]int64)
	for _, o := range orders {
		ordered[o.Area] += sumOrdered([]dataset.OrderRecord{o}, bread)
	}

	var loaded map[string]int64
	if despatchHasArea {
		loaded = make(map[string]int64)
		for _, d := range despatch {
			loaded[d.Area] += sumLoaded([]dataset.DespatchRecord{d}, bread)
		}
	}

	areas := make([]string, 0, len(ordered))
	for area := range ordered {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	breakdown := dashboard.AreaBreakdown{
		LoadedAvailable: despatchHasArea,
		Rows:            make([]dashboard.AreaRow, 0, len(areas)),
	}
	for _, area := range areas {
		row := dashboard.AreaRow{
			Area:         area,
			TotalOrdered: ordered[area],
		}
		if despatchHasArea {
			l := loaded[area]
			v := row.TotalOrdered - l
			row.TotalLoaded = &l
			row.Variance = &v
		}
		breakdown.Rows = append(breakdown.Rows, row)
	}
	return breakdown
}

// complianceDistribution counts despatch rows per loading compliance
// label. Blank labels are skipped. Slices are ordered by count, ties keep
// the order labels first appeared in.
func complianceDistribution(despatch []dataset.DespatchRecord) dashboard.ComplianceDistribution {
	counts := make(map[string]int)
	order := make([]string, 0)
	total := 0

	for _, d := range despatch {
		if d.LoadingStatus == "" {
			continue
		}
		if _, seen := counts[d.LoadingStatus]; !seen {
			order = append(order, d.LoadingStatus)
		}
		counts[d.LoadingStatus]++
		total++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	dist := dashboard.ComplianceDistribution{
		Total:  total,
		Slices: make([]dashboard.ComplianceSlice, 0, len(order)),
	}
	for _, status := range order {
		dist.Slices = append(dist.Slices, dashboard.ComplianceSlice{
			Status:   status,
			Count:    counts[status],
			SharePct: percent(float64(counts[status]), float64(total)),
		})
	}
	return dist
}
