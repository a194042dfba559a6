package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
)

// DatasetJobs keeps the loaded snapshot in step with the source files
type DatasetJobs struct {
	datasetService dataset.DatasetService
	interval       time.Duration
}

func NewDatasetJobs(datasetService dataset.DatasetService, interval time.Duration) *DatasetJobs {
	return &DatasetJobs{
		datasetService: datasetService,
		interval:       interval,
	}
}

func (j *DatasetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_dataset", j.interval, j.RefreshDataset)
}

// RefreshDataset reloads the sources when any file changed on disk
func (j *DatasetJobs) RefreshDataset(ctx context.Context) error {
	reloaded, err := j.datasetService.Refresh(ctx)
	if err != nil {
		return err
	}
	if reloaded {
		slog.Info("Cron: dataset refreshed from changed sources")
	}
	return nil
}
