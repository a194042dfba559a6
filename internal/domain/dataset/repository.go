package dataset

import "context"

// SourceRepository loads the three dashboard sources.
type SourceRepository interface {
	// Load reads orders, despatch and date index into typed tables
	Load(ctx context.Context) (*Tables, error)

	// Sources returns the current version info of every source file
	Sources(ctx context.Context) ([]SourceInfo, error)
}

// SnapshotStore hands out the most recently loaded snapshot.
type SnapshotStore interface {
	// Current returns ErrNotLoaded until the first successful load
	Current(ctx context.Context) (*Snapshot, error)
}
