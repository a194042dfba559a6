package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/bakersinn/despatch-dashboard/internal/handler/http/response"
)

type DatasetHandler interface {
	// Status returns the current snapshot
	Status(w http.ResponseWriter, r *http.Request)
	// Reload forces all sources to be read again
	Reload(w http.ResponseWriter, r *http.Request)
	// Events streams reload events over SSE
	Events(w http.ResponseWriter, r *http.Request)
}

type datasetHandlerImpl struct {
	datasetService dataset.DatasetService
	keepalive      time.Duration
}

func NewDatasetHandler(datasetService dataset.DatasetService) DatasetHandler {
	return &datasetHandlerImpl{
		datasetService: datasetService,
		keepalive:      30 * time.Second,
	}
}

// Status handles GET /dataset
func (h *datasetHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	snap, err := h.datasetService.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dataset.NewReloadResponse(snap))
}

// Reload handles POST /dataset/reload
func (h *datasetHandlerImpl) Reload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.datasetService.Reload(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dataset reloaded", dataset.NewReloadResponse(snap))
}

// Events handles GET /dataset/events
func (h *datasetHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.datasetService.Subscribe(r.Context())
	defer cleanup()

	// Send initial connection event with the snapshot clients should render
	connected := map[string]string{"status": "connected"}
	if snap, err := h.datasetService.Current(r.Context()); err == nil {
		connected["snapshot_id"] = snap.ID
	}
	writeEvent(w, "connected", connected)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			writeEvent(w, event.Event, event.Data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
}
