package dataset

import "context"

type DatasetService interface {
	SnapshotStore

	// Reload reads every source and swaps in a new snapshot. On failure the
	// previous snapshot stays current.
	Reload(ctx context.Context) (*Snapshot, error)

	// Refresh reloads only when a source file changed size or mtime
	Refresh(ctx context.Context) (reloaded bool, err error)

	// Subscribe streams reload events until cleanup is called
	Subscribe(ctx context.Context) (<-chan StreamEvent, func())
}
