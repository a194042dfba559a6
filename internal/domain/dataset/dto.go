package dataset

import "time"

const (
	EventReloaded     = "dataset.reloaded"
	EventReloadFailed = "dataset.reload_failed"
)

// ReloadResponse describes the snapshot produced by a reload
type ReloadResponse struct {
	SnapshotID string       `json:"snapshot_id"`
	LoadedAt   time.Time    `json:"loaded_at"`
	Sources    []SourceInfo `json:"sources"`
	Report     LoadReport   `json:"report"`
}

// ReloadFailedResponse is sent when a reload leaves the previous snapshot in place
type ReloadFailedResponse struct {
	Error      string `json:"error"`
	SnapshotID string `json:"snapshot_id,omitempty"`
}

// StreamEvent is one dataset change pushed to a stream subscriber
type StreamEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// NewReloadResponse summarises snap for clients
func NewReloadResponse(snap *Snapshot) ReloadResponse {
	resp := ReloadResponse{
		SnapshotID: snap.ID,
		LoadedAt:   snap.LoadedAt,
		Sources:    snap.Sources,
	}
	if resp.Sources == nil {
		resp.Sources = []SourceInfo{}
	}
	if snap.Tables != nil {
		resp.Report = snap.Tables.Report
	}
	return resp
}
