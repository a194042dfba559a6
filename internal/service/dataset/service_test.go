package dataset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	mu      sync.Mutex
	tables  *dataset.Tables
	sources []dataset.SourceInfo
	loadErr error
	loads   int
}

func (f *fakeRepository) Load(ctx context.Context) (*dataset.Tables, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.tables, nil
}

func (f *fakeRepository) Sources(ctx context.Context) ([]dataset.SourceInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]dataset.SourceInfo, len(f.sources))
	copy(out, f.sources)
	return out, nil
}

func (f *fakeRepository) touch(size int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources[0].Size = size
}

func newFakeRepository() *fakeRepository {
	mod := time.Date(2025, 6, 30, 17, 0, 0, 0, time.UTC)
	return &fakeRepository{
		tables: &dataset.Tables{
			Orders:    []dataset.OrderRecord{{Link: "L1", Area: "Harare"}},
			Despatch:  []dataset.DespatchRecord{{Link: "L1"}},
			DateIndex: []dataset.DateIndexRecord{{Link: "L1", Month: "June", Route: "R1"}},
		},
		sources: []dataset.SourceInfo{
			{Name: "orders", Path: "orders.xlsx", Size: 100, ModTime: mod},
			{Name: "despatch", Path: "despatch.xlsx", Size: 200, ModTime: mod},
			{Name: "date_index", Path: "index.xlsx", Size: 50, ModTime: mod},
		},
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)
}

func TestCurrent_NotLoaded(t *testing.T) {
	svc := newDatasetService(newFakeRepository(), nil, fixedNow)

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, dataset.ErrNotLoaded)
}

func TestReload(t *testing.T) {
	repo := newFakeRepository()
	svc := newDatasetService(repo, sse.NewHub(), fixedNow)
	ctx := context.Background()

	snap, err := svc.Reload(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, fixedNow(), snap.LoadedAt)
	assert.Len(t, snap.Sources, 3)
	assert.Same(t, repo.tables, snap.Tables)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Same(t, snap, current)

	again, err := svc.Reload(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, snap.ID, again.ID)
}

func TestReload_FailureKeepsPrevious(t *testing.T) {
	repo := newFakeRepository()
	svc := newDatasetService(repo, sse.NewHub(), fixedNow)
	ctx := context.Background()

	first, err := svc.Reload(ctx)
	require.NoError(t, err)

	repo.loadErr = errors.Join(dataset.ErrSchema, errors.New("orders: missing column AREA"))
	_, err = svc.Reload(ctx)
	assert.ErrorIs(t, err, dataset.ErrSchema)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Same(t, first, current)
}

func TestRefresh(t *testing.T) {
	repo := newFakeRepository()
	svc := newDatasetService(repo, nil, fixedNow)
	ctx := context.Background()

	reloaded, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded, "first refresh loads")
	assert.Equal(t, 1, repo.loads)

	reloaded, err = svc.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, reloaded)
	assert.Equal(t, 1, repo.loads)

	repo.touch(101)
	reloaded, err = svc.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.Equal(t, 2, repo.loads)
}

func TestSubscribe_ReceivesReloadEvents(t *testing.T) {
	repo := newFakeRepository()
	svc := newDatasetService(repo, sse.NewHub(), fixedNow)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := svc.Subscribe(ctx)
	defer cleanup()

	snap, err := svc.Reload(ctx)
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, dataset.EventReloaded, ev.Event)
		resp, ok := ev.Data.(dataset.ReloadResponse)
		require.True(t, ok)
		assert.Equal(t, snap.ID, resp.SnapshotID)
	case <-time.After(time.Second):
		t.Fatal("no reload event")
	}

	repo.loadErr = dataset.ErrFileAccess
	_, err = svc.Reload(ctx)
	require.Error(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, dataset.EventReloadFailed, ev.Event)
		resp, ok := ev.Data.(dataset.ReloadFailedResponse)
		require.True(t, ok)
		assert.Equal(t, snap.ID, resp.SnapshotID)
	case <-time.After(time.Second):
		t.Fatal("no failure event")
	}
}

func TestNewReloadResponse(t *testing.T) {
	resp := dataset.NewReloadResponse(&dataset.Snapshot{ID: "x"})
	assert.Equal(t, "x", resp.SnapshotID)
	assert.NotNil(t, resp.Sources)
}
