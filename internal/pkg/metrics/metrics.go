// Package metrics holds the Prometheus collectors shared by the dataset
// store and the dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ViewRendersTotal counts dashboard requests per page, split by whether
	// the view came from the memo cache.
	ViewRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "despatch_dashboard_view_requests_total",
		Help: "Dashboard view requests by page and cache outcome",
	}, []string{"page", "cache"})

	ViewRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "despatch_dashboard_view_render_seconds",
		Help:    "Time spent filtering and aggregating one view",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	DatasetLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "despatch_dashboard_dataset_loads_total",
		Help: "Dataset loads by result",
	}, []string{"result"})

	DatasetLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "despatch_dashboard_dataset_load_seconds",
		Help:    "Time spent reading and parsing the three sources",
		Buckets: prometheus.DefBuckets,
	})

	DatasetRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "despatch_dashboard_dataset_rows",
		Help: "Rows in the current snapshot per source",
	}, []string{"source"})
)
