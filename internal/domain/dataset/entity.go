package dataset

import (
	"time"
)

// OrderRecord is one row of the orders extract.
type OrderRecord struct {
	Link       string
	Area       string
	Date       *time.Time
	Quantities map[SKU]int64
}

// Quantity returns the ordered quantity for sku, 0 when absent.
func (o OrderRecord) Quantity(sku SKU) int64 {
	return o.Quantities[sku]
}

// DespatchRecord is one row of the despatch tracker.
type DespatchRecord struct {
	Link string
	// Area is only set when the despatch source carries an AREA column.
	Area            string
	Date            *time.Time
	Quantities      map[SKU]int64
	DepartureStatus string
	LoadingStatus   string
}

// Quantity returns the loaded quantity for sku, 0 when absent.
func (d DespatchRecord) Quantity(sku SKU) int64 {
	return d.Quantities[sku]
}

// OnTime reports whether the despatch left on schedule.
func (d DespatchRecord) OnTime() bool {
	return d.DepartureStatus == DepartureOnTime
}

// DateIndexRecord maps a link to its calendar day, month label and route.
type DateIndexRecord struct {
	Link  string
	Date  *time.Time
	Month string
	Route string
}

// Tables is one immutable load of the three sources.
type Tables struct {
	Orders          []OrderRecord
	Despatch        []DespatchRecord
	DateIndex       []DateIndexRecord
	DespatchHasArea bool
	Report          LoadReport
}

// SourceReport counts the cells recovered during a best-effort load.
type SourceReport struct {
	Source          string `json:"source"`
	File            string `json:"file"`
	Sheet           string `json:"sheet,omitempty"`
	Rows            int    `json:"rows"`
	InvalidDates    int    `json:"invalid_dates"`
	InvalidQuantity int    `json:"invalid_quantity"`
	DuplicateLinks  int    `json:"duplicate_links,omitempty"`
}

// LoadReport aggregates the per source reports of one load.
type LoadReport struct {
	Orders    SourceReport `json:"orders"`
	Despatch  SourceReport `json:"despatch"`
	DateIndex SourceReport `json:"date_index"`
}

// SourceInfo identifies the file version a snapshot was built from.
type SourceInfo struct {
	Name    string    `json:"name"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Snapshot is a loaded dataset plus the identity of its load.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	Sources  []SourceInfo
	Tables   *Tables
}
