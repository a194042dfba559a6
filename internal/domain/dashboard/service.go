package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Options returns the filter picker values and the default selection
	Options(ctx context.Context) (*OptionsResponse, error)

	// GetView returns all three pages for a selection
	GetView(ctx context.Context, req SelectionRequest) (*ViewModel, error)

	// GetSummary returns KPI cards, product mix, SKU bars and the area table
	GetSummary(ctx context.Context, req SelectionRequest) (*SummaryPage, error)

	// GetBread returns the bread SKU breakdown
	GetBread(ctx context.Context, req SelectionRequest) (*BreadPage, error)

	// GetBiscuits returns the biscuit SKU breakdown and loading compliance
	GetBiscuits(ctx context.Context, req SelectionRequest) (*BiscuitsPage, error)

	// Export renders the view for a selection as an xlsx workbook
	Export(ctx context.Context, req SelectionRequest) (*ExportFile, error)
}
