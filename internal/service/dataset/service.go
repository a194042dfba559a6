package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/metrics"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/sse"
	"github.com/google/uuid"
)

// Topic is the hub topic dataset events are published on
const Topic = "dataset"

type DatasetServiceImpl struct {
	repo dataset.SourceRepository
	hub  *sse.Hub
	now  func() time.Time

	reloadMu sync.Mutex

	mu      sync.RWMutex
	current *dataset.Snapshot
}

// NewDatasetService starts with no snapshot; call Reload before serving.
func NewDatasetService(repo dataset.SourceRepository, hub *sse.Hub) dataset.DatasetService {
	return newDatasetService(repo, hub, time.Now)
}

func newDatasetService(repo dataset.SourceRepository, hub *sse.Hub, now func() time.Time) *DatasetServiceImpl {
	return &DatasetServiceImpl{
		repo: repo,
		hub:  hub,
		now:  now,
	}
}

// Current returns the snapshot renders should read from
func (s *DatasetServiceImpl) Current(ctx context.Context) (*dataset.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, dataset.ErrNotLoaded
	}
	return s.current, nil
}

// Reload loads all sources into a new snapshot
func (s *DatasetServiceImpl) Reload(ctx context.Context) (*dataset.Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	snap, err := s.load(ctx)
	metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.DatasetLoadsTotal.WithLabelValues("failure").Inc()
		slog.Error("Dataset reload failed", "error", err, "duration", time.Since(start))

		failed := dataset.ReloadFailedResponse{Error: err.Error()}
		if prev, _ := s.Current(ctx); prev != nil {
			failed.SnapshotID = prev.ID
		}
		s.publish(dataset.EventReloadFailed, failed)
		return nil, err
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	metrics.DatasetLoadsTotal.WithLabelValues("success").Inc()
	metrics.DatasetRows.WithLabelValues("orders").Set(float64(len(snap.Tables.Orders)))
	metrics.DatasetRows.WithLabelValues("despatch").Set(float64(len(snap.Tables.Despatch)))
	metrics.DatasetRows.WithLabelValues("date_index").Set(float64(len(snap.Tables.DateIndex)))

	report := snap.Tables.Report
	slog.Info("Dataset loaded",
		"snapshot_id", snap.ID,
		"orders", len(snap.Tables.Orders),
		"despatch", len(snap.Tables.Despatch),
		"date_index", len(snap.Tables.DateIndex),
		"despatch_has_area", snap.Tables.DespatchHasArea,
		"invalid_dates", report.Orders.InvalidDates+report.Despatch.InvalidDates+report.DateIndex.InvalidDates,
		"invalid_quantities", report.Orders.InvalidQuantity+report.Despatch.InvalidQuantity,
		"duplicate_links", report.DateIndex.DuplicateLinks,
		"duration", time.Since(start),
	)

	s.publish(dataset.EventReloaded, dataset.NewReloadResponse(snap))
	return snap, nil
}

func (s *DatasetServiceImpl) load(ctx context.Context) (*dataset.Snapshot, error) {
	sources, err := s.repo.Sources(ctx)
	if err != nil {
		return nil, err
	}

	tables, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &dataset.Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: s.now().UTC(),
		Sources:  sources,
		Tables:   tables,
	}, nil
}

// Refresh compares source versions against the current snapshot and
// reloads when any differ
func (s *DatasetServiceImpl) Refresh(ctx context.Context) (bool, error) {
	current, err := s.Current(ctx)
	if err == nil {
		sources, err := s.repo.Sources(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check sources: %w", err)
		}
		if sameVersions(current.Sources, sources) {
			return false, nil
		}
	}

	if _, err := s.Reload(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func sameVersions(a, b []dataset.SourceInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Path != b[i].Path || a[i].Size != b[i].Size || !a[i].ModTime.Equal(b[i].ModTime) {
			return false
		}
	}
	return true
}

func (s *DatasetServiceImpl) publish(event string, data interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(sse.Event{
		Topic: Topic,
		Event: event,
		Data:  data,
	})
}

// Subscribe relays dataset events from the hub until cleanup or ctx ends
func (s *DatasetServiceImpl) Subscribe(ctx context.Context) (<-chan dataset.StreamEvent, func()) {
	out := make(chan dataset.StreamEvent, 10)
	if s.hub == nil {
		close(out)
		return out, func() {}
	}

	ch, cleanup := s.hub.Subscribe(Topic)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- dataset.StreamEvent{Event: event.Event, Data: event.Data}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}
