package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsOnTicker(t *testing.T) {
	var runs atomic.Int32
	s := NewScheduler(context.Background())
	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	s.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_DisabledJob(t *testing.T) {
	s := NewScheduler(context.Background())
	s.AddJob("off", 0, func(ctx context.Context) error { return nil })

	assert.Empty(t, s.Jobs())
}

func TestScheduler_RunOnceJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	s := NewScheduler(context.Background())
	s.AddJob("ok", time.Minute, func(ctx context.Context) error { return nil })
	s.AddJob("bad", time.Minute, func(ctx context.Context) error { return boom })

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
}

type fakeDatasetService struct {
	dataset.DatasetService
	refreshes int
	reloaded  bool
	err       error
}

func (f *fakeDatasetService) Refresh(ctx context.Context) (bool, error) {
	f.refreshes++
	return f.reloaded, f.err
}

func TestDatasetJobs(t *testing.T) {
	svc := &fakeDatasetService{reloaded: true}
	s := NewScheduler(context.Background())
	NewDatasetJobs(svc, time.Minute).RegisterJobs(s)

	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "refresh_dataset", jobs[0].Name)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, svc.refreshes)

	svc.err = dataset.ErrFileAccess
	assert.ErrorIs(t, s.RunOnce(context.Background()), dataset.ErrFileAccess)
}
