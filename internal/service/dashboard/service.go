package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dashboard"
	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/metrics"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	pageAll      = "all"
	pageSummary  = "summary"
	pageBread    = "bread"
	pageBiscuits = "biscuits"
	pageExport   = "export"
)

type DashboardServiceImpl struct {
	store dataset.SnapshotStore
	cache *lru.Cache[string, *dashboard.ViewModel]
	now   func() time.Time
}

// Option configures a DashboardServiceImpl.
type Option func(*DashboardServiceImpl)

// WithClock replaces time.Now, which decides the default Daily date.
func WithClock(now func() time.Time) Option {
	return func(s *DashboardServiceImpl) {
		s.now = now
	}
}

// NewDashboardService memoizes up to cacheSize views; 0 disables the cache.
func NewDashboardService(store dataset.SnapshotStore, cacheSize int, opts ...Option) (dashboard.DashboardService, error) {
	s := &DashboardServiceImpl{
		store: store,
		now:   time.Now,
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, *dashboard.ViewModel](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create view cache: %w", err)
		}
		s.cache = cache
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Options returns the picker values for the current snapshot
func (s *DashboardServiceImpl) Options(ctx context.Context) (*dashboard.OptionsResponse, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	return buildOptions(snap, s.now()), nil
}

// view resolves the selection and renders it, consulting the cache first.
// Cached view models are shared and must be treated as read-only.
func (s *DashboardServiceImpl) view(ctx context.Context, req dashboard.SelectionRequest, page string) (*dashboard.ViewModel, error) {
	snap, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}

	sel, err := resolveSelection(req, snap.Tables, s.now())
	if err != nil {
		return nil, err
	}

	key := snap.ID + "#" + sel.Key()
	if s.cache != nil {
		if vm, ok := s.cache.Get(key); ok {
			metrics.ViewRendersTotal.WithLabelValues(page, "hit").Inc()
			return vm, nil
		}
	}

	start := time.Now()
	vm := Render(snap, sel)
	metrics.ViewRenderDuration.Observe(time.Since(start).Seconds())
	metrics.ViewRendersTotal.WithLabelValues(page, "miss").Inc()

	if s.cache != nil {
		s.cache.Add(key, vm)
	}
	return vm, nil
}

// GetView returns all three pages
func (s *DashboardServiceImpl) GetView(ctx context.Context, req dashboard.SelectionRequest) (*dashboard.ViewModel, error) {
	return s.view(ctx, req, pageAll)
}

// GetSummary returns the Summary page
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, req dashboard.SelectionRequest) (*dashboard.SummaryPage, error) {
	vm, err := s.view(ctx, req, pageSummary)
	if err != nil {
		return nil, err
	}
	return &vm.Summary, nil
}

// GetBread returns the Bread SKUs page
func (s *DashboardServiceImpl) GetBread(ctx context.Context, req dashboard.SelectionRequest) (*dashboard.BreadPage, error) {
	vm, err := s.view(ctx, req, pageBread)
	if err != nil {
		return nil, err
	}
	return &vm.Bread, nil
}

// GetBiscuits returns the Biscuits & Loading Compliance page
func (s *DashboardServiceImpl) GetBiscuits(ctx context.Context, req dashboard.SelectionRequest) (*dashboard.BiscuitsPage, error) {
	vm, err := s.view(ctx, req, pageBiscuits)
	if err != nil {
		return nil, err
	}
	return &vm.Biscuits, nil
}

// Export renders the selection into an xlsx workbook
func (s *DashboardServiceImpl) Export(ctx context.Context, req dashboard.SelectionRequest) (*dashboard.ExportFile, error) {
	vm, err := s.view(ctx, req, pageExport)
	if err != nil {
		return nil, err
	}

	content, err := buildWorkbook(vm)
	if err != nil {
		return nil, fmt.Errorf("failed to build export workbook: %w", err)
	}

	return &dashboard.ExportFile{
		Filename:    exportFilename(vm.Selection),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}
