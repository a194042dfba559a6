package dashboard

import (
	"testing"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSKUBreakdown_SumsPerSKU(t *testing.T) {
	orders := []dataset.OrderRecord{
		{Link: "L1", Quantities: qty(dataset.SKUBIWhite, 10)},
		{Link: "L1", Quantities: qty(dataset.SKUBIWhite, 20)},
	}
	despatch := []dataset.DespatchRecord{
		{Link: "L1", Quantities: qty(dataset.SKUBIWhite, 8)},
		{Link: "L1", Quantities: qty(dataset.SKUBIWhite, 19)},
	}

	got := skuBreakdown(dataset.CategoryBread, orders, despatch)

	require.Len(t, got.Rows, len(dataset.BreadSKUs()))
	for i, sku := range dataset.BreadSKUs() {
		assert.Equal(t, sku, got.Rows[i].SKU, "declared order")
	}
	assert.Equal(t, int64(30), got.Rows[0].Ordered)
	assert.Equal(t, int64(27), got.Rows[0].Loaded)
	assert.Equal(t, int64(30), got.TotalOrdered)
	assert.Equal(t, int64(27), got.TotalLoaded)
	for _, row := range got.Rows[1:] {
		assert.Zero(t, row.Ordered)
		assert.Zero(t, row.Loaded)
	}
}

func TestSKUBreakdown_Biscuits(t *testing.T) {
	tables := sampleTables()

	got := skuBreakdown(dataset.CategoryBiscuit, tables.Orders, tables.Despatch)

	require.Len(t, got.Rows, 3)
	assert.Equal(t, dataset.SKUMunchie150G, got.Rows[0].SKU)
	assert.Equal(t, int64(3), got.Rows[0].Ordered)
	assert.Equal(t, int64(3), got.Rows[0].Loaded)
	assert.Equal(t, int64(2), got.Rows[1].Ordered)
	assert.Equal(t, int64(1), got.Rows[1].Loaded)
	assert.Equal(t, int64(5), got.TotalOrdered)
}

func TestComputeKPIs_Empty(t *testing.T) {
	kpis := computeKPIs(nil, nil)

	assert.Zero(t, kpis.TotalOrdered)
	assert.Zero(t, kpis.TotalLoaded)
	assert.Zero(t, kpis.DepartureCompliancePct)
	assert.Zero(t, kpis.OrderFillPct)
	assert.Equal(t, "0", kpis.Display.TotalOrdered)
	assert.Equal(t, "0.0%", kpis.Display.OrderFill)
}

func TestComputeKPIs_OrderFillGuard(t *testing.T) {
	despatch := []dataset.DespatchRecord{
		{Link: "L1", Quantities: qty(dataset.SKUBIWhite, 5), DepartureStatus: "On-time"},
	}

	kpis := computeKPIs(nil, despatch)

	assert.Equal(t, int64(5), kpis.TotalLoaded)
	assert.Zero(t, kpis.OrderFillPct)
	assert.Equal(t, 100.0, kpis.DepartureCompliancePct)
}

func TestComputeKPIs_SampleTables(t *testing.T) {
	tables := sampleTables()

	kpis := computeKPIs(tables.Orders, tables.Despatch)

	// Biscuits never count towards the totals.
	assert.Equal(t, int64(57), kpis.TotalOrdered)
	assert.Equal(t, int64(45), kpis.TotalLoaded)
	assert.InDelta(t, 45.0/57.0*100, kpis.OrderFillPct, 1e-9)

	// "on-time" in lower case is not an exact match.
	assert.Equal(t, 4, kpis.DespatchCount)
	assert.Equal(t, 2, kpis.OnTimeCount)
	assert.Equal(t, 50.0, kpis.DepartureCompliancePct)
	assert.Equal(t, "50.0%", kpis.Display.DepartureCompliance)
	assert.Equal(t, "78.9%", kpis.Display.OrderFill)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12,340", formatCount(12340))
	assert.Equal(t, "1,234,567", formatCount(1234567))
	assert.Equal(t, "999", formatCount(999))

	assert.Equal(t, "97.5%", formatPercent(97.46))
	assert.Equal(t, "66.7%", formatPercent(200.0/3))
	assert.Equal(t, "100.0%", formatPercent(100))
}

func TestProductMix(t *testing.T) {
	tables := sampleTables()

	mix := productMix(tables.Orders[:2])

	require.Len(t, mix, len(dataset.BreadSKUs()))
	assert.Equal(t, dataset.SKUBIWhite, mix[0].SKU)
	assert.Equal(t, int64(30), mix[0].Ordered)
	assert.InDelta(t, 75.0, mix[0].SharePct, 1e-9)
	assert.InDelta(t, 15.0, mix[1].SharePct, 1e-9)
	assert.InDelta(t, 10.0, mix[3].SharePct, 1e-9)
	assert.Zero(t, mix[5].SharePct)

	for _, slice := range productMix(nil) {
		assert.Zero(t, slice.SharePct)
	}
}

func TestAreaBreakdown_LoadedUnavailable(t *testing.T) {
	tables := sampleTables()

	got := areaBreakdown(tables.Orders, tables.Despatch, false)

	assert.False(t, got.LoadedAvailable)
	require.Len(t, got.Rows, 3)
	assert.Equal(t, "Bulawayo", got.Rows[0].Area)
	assert.Equal(t, int64(26), got.Rows[0].TotalOrdered)
	assert.Equal(t, "Harare", got.Rows[1].Area)
	assert.Equal(t, int64(15), got.Rows[1].TotalOrdered)
	assert.Equal(t, "Mutare", got.Rows[2].Area)
	assert.Equal(t, int64(16), got.Rows[2].TotalOrdered)
	for _, row := range got.Rows {
		assert.Nil(t, row.TotalLoaded)
		assert.Nil(t, row.Variance)
	}
}

func TestAreaBreakdown_LoadedByArea(t *testing.T) {
	orders := []dataset.OrderRecord{
		{Link: "L1", Area: "Harare", Quantities: qty(dataset.SKUBIWhite, 10)},
		{Link: "L2", Area: "Mutare", Quantities: qty(dataset.SKUBIWhite, 4)},
	}
	despatch := []dataset.DespatchRecord{
		{Link: "L1", Area: "Harare", Quantities: qty(dataset.SKUBIWhite, 8)},
		{Link: "L2", Area: "Gweru", Quantities: qty(dataset.SKUBIWhite, 3)},
	}

	got := areaBreakdown(orders, despatch, true)

	assert.True(t, got.LoadedAvailable)
	require.Len(t, got.Rows, 2)

	harare := got.Rows[0]
	require.NotNil(t, harare.TotalLoaded)
	assert.Equal(t, int64(8), *harare.TotalLoaded)
	assert.Equal(t, int64(2), *harare.Variance)

	mutare := got.Rows[1]
	require.NotNil(t, mutare.TotalLoaded)
	assert.Equal(t, int64(0), *mutare.TotalLoaded)
	assert.Equal(t, int64(4), *mutare.Variance)
}

func TestComplianceDistribution(t *testing.T) {
	despatch := []dataset.DespatchRecord{
		{LoadingStatus: "Partial"},
		{LoadingStatus: "Compliant"},
		{LoadingStatus: "Non-compliant"},
		{LoadingStatus: "Compliant"},
		{LoadingStatus: "Non-compliant"},
		{LoadingStatus: ""},
	}

	got := complianceDistribution(despatch)

	assert.Equal(t, 5, got.Total)
	require.Len(t, got.Slices, 3)
	assert.Equal(t, "Compliant", got.Slices[0].Status)
	assert.Equal(t, 2, got.Slices[0].Count)
	assert.InDelta(t, 40.0, got.Slices[0].SharePct, 1e-9)
	assert.Equal(t, "Non-compliant", got.Slices[1].Status)
	assert.Equal(t, "Partial", got.Slices[2].Status)
	assert.InDelta(t, 20.0, got.Slices[2].SharePct, 1e-9)

	empty := complianceDistribution(nil)
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.Slices)
	assert.Empty(t, empty.Slices)
}
