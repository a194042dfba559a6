package dashboard

import "github.com/bakersinn/despatch-dashboard/internal/domain/dataset"

// ========== VIEW MODEL ==========

// ViewModel is everything the three dashboard pages need for one selection
type ViewModel struct {
	Snapshot  SnapshotResponse  `json:"snapshot"`
	Selection SelectionResponse `json:"selection"`
	Counts    RowCounts         `json:"counts"`
	Summary   SummaryPage       `json:"summary"`
	Bread     BreadPage         `json:"bread"`
	Biscuits  BiscuitsPage      `json:"biscuits"`
}

// SnapshotResponse identifies the dataset load a view was computed from
type SnapshotResponse struct {
	ID       string               `json:"id"`
	LoadedAt string               `json:"loaded_at"` // RFC3339
	Sources  []dataset.SourceInfo `json:"sources"`
}

// SelectionResponse echoes the resolved selection, defaults applied
type SelectionResponse struct {
	Mode   DateMode `json:"mode"`
	Date   string   `json:"date,omitempty"` // Format: "YYYY-MM-DD"
	Month  string   `json:"month,omitempty"`
	Routes []string `json:"routes"`
	Areas  []string `json:"areas"`
}

// RowCounts is the size of the filtered tables
type RowCounts struct {
	Orders   int `json:"orders"`
	Despatch int `json:"despatch"`
}

// ========== SUMMARY PAGE ==========

// SummaryPage holds the four KPI cards, product mix, SKU bars and area table
type SummaryPage struct {
	KPIs         KPIs          `json:"kpis"`
	ProductMix   []MixSlice    `json:"product_mix"`
	SKUBreakdown SKUBreakdown  `json:"sku_breakdown"`
	Areas        AreaBreakdown `json:"areas"`
}

// KPIs are the scalar metrics over bread SKUs
type KPIs struct {
	TotalOrdered           int64      `json:"total_ordered"`
	TotalLoaded            int64      `json:"total_loaded"`
	DepartureCompliancePct float64    `json:"departure_compliance_pct"`
	OrderFillPct           float64    `json:"order_fill_pct"`
	DespatchCount          int        `json:"despatch_count"`
	OnTimeCount            int        `json:"on_time_count"`
	Display                KPIDisplay `json:"display"`
}

// KPIDisplay carries the card labels, e.g. "12,340" and "97.5%"
type KPIDisplay struct {
	TotalOrdered        string `json:"total_ordered"`
	TotalLoaded         string `json:"total_loaded"`
	DepartureCompliance string `json:"departure_compliance"`
	OrderFill           string `json:"order_fill"`
}

// MixSlice is one slice of the product mix pie
type MixSlice struct {
	SKU      dataset.SKU `json:"sku"`
	Ordered  int64       `json:"ordered"`
	SharePct float64     `json:"share_pct"`
}

// AreaBreakdown is the per-area ordered table.
// Loaded totals are only available when despatch rows carry an area.
type AreaBreakdown struct {
	LoadedAvailable bool      `json:"loaded_available"`
	Rows            []AreaRow `json:"rows"`
}

// AreaRow is one line of the area table
type AreaRow struct {
	Area         string `json:"area"`
	TotalOrdered int64  `json:"total_ordered"`
	TotalLoaded  *int64 `json:"total_loaded"`
	Variance     *int64 `json:"variance"` // ordered - loaded
}

// ========== SKU PAGES ==========

// SKUBreakdown is ordered vs loaded per SKU, in declared SKU order
type SKUBreakdown struct {
	Category     dataset.Category `json:"category"`
	Rows         []SKURow         `json:"rows"`
	TotalOrdered int64            `json:"total_ordered"`
	TotalLoaded  int64            `json:"total_loaded"`
}

// SKURow is one bar pair of the grouped bar chart
type SKURow struct {
	SKU     dataset.SKU `json:"sku"`
	Ordered int64       `json:"ordered"`
	Loaded  int64       `json:"loaded"`
}

// BreadPage is the Bread SKUs page
type BreadPage struct {
	SKUBreakdown SKUBreakdown `json:"sku_breakdown"`
}

// BiscuitsPage is the Biscuits & Loading Compliance page
type BiscuitsPage struct {
	SKUBreakdown      SKUBreakdown           `json:"sku_breakdown"`
	LoadingCompliance ComplianceDistribution `json:"loading_compliance"`
}

// ComplianceDistribution counts despatch rows per loading compliance label
type ComplianceDistribution struct {
	Total  int               `json:"total"`
	Slices []ComplianceSlice `json:"slices"`
}

// ComplianceSlice is one slice of the loading compliance pie
type ComplianceSlice struct {
	Status   string  `json:"status"`
	Count    int     `json:"count"`
	SharePct float64 `json:"share_pct"`
}

// ========== FILTER OPTIONS ==========

// OptionsResponse feeds the filter pickers
type OptionsResponse struct {
	Snapshot   SnapshotResponse   `json:"snapshot"`
	Modes      []DateMode         `json:"modes"`
	Routes     []string           `json:"routes"`
	Areas      []string           `json:"areas"`
	Months     []string           `json:"months"`
	Dates      []string           `json:"dates"` // Format: "YYYY-MM-DD"
	Default    SelectionResponse  `json:"default"`
	LoadReport dataset.LoadReport `json:"load_report"`
}

// ========== EXPORT ==========

// ExportFile is a rendered workbook ready to be sent to the client
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
