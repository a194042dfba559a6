package dashboard

import (
	"context"
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func qty(pairs ...interface{}) map[dataset.SKU]int64 {
	q := make(map[dataset.SKU]int64)
	for i := 0; i+1 < len(pairs); i += 2 {
		q[pairs[i].(dataset.SKU)] = int64(pairs[i+1].(int))
	}
	return q
}

// sampleTables is a small June extract over two routes and three areas.
func sampleTables() *dataset.Tables {
	return &dataset.Tables{
		DateIndex: []dataset.DateIndexRecord{
			{Link: "L1", Date: day(2025, 6, 1), Month: "June", Route: "R1"},
			{Link: "L2", Date: day(2025, 6, 1), Month: "June", Route: "R2"},
			{Link: "L3", Date: day(2025, 6, 2), Month: "June", Route: "R1"},
			{Link: "L4", Date: day(2025, 7, 1), Month: "July", Route: "R2"},
			{Link: "L5", Date: nil, Month: "July", Route: "R3"},
		},
		Orders: []dataset.OrderRecord{
			{Link: "L1", Area: "Harare", Quantities: qty(dataset.SKUBIWhite, 10, dataset.SKUMrChingwa, 4, dataset.SKUMunchie150G, 3)},
			{Link: "L1", Area: "Bulawayo", Quantities: qty(dataset.SKUBIWhite, 20, dataset.SKUBIBrown, 6)},
			{Link: "L2", Area: "Mutare", Quantities: qty(dataset.SKUBIWhite, 7, dataset.SKUMunchie1KG, 2)},
			{Link: "L3", Area: "Harare", Quantities: qty(dataset.SKUBIWhite, 1)},
			{Link: "L4", Area: "Mutare", Quantities: qty(dataset.SKUDrChingwa, 9)},
		},
		Despatch: []dataset.DespatchRecord{
			{Link: "L1", Quantities: qty(dataset.SKUBIWhite, 8, dataset.SKUMrChingwa, 4, dataset.SKUMunchie150G, 3), DepartureStatus: "On-time", LoadingStatus: "Compliant"},
			{Link: "L1", Quantities: qty(dataset.SKUBIWhite, 19, dataset.SKUBIBrown, 6), DepartureStatus: "Late", LoadingStatus: "Non-compliant"},
			{Link: "L2", Quantities: qty(dataset.SKUBIWhite, 7, dataset.SKUMunchie1KG, 1), DepartureStatus: "On-time", LoadingStatus: "Compliant"},
			{Link: "L3", Quantities: qty(dataset.SKUBIWhite, 1), DepartureStatus: "on-time", LoadingStatus: ""},
		},
	}
}

func sampleSnapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		ID:       "snap-1",
		LoadedAt: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
		Tables:   sampleTables(),
	}
}

type stubStore struct {
	snap *dataset.Snapshot
	err  error
}

func (s *stubStore) Current(ctx context.Context) (*dataset.Snapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.snap == nil {
		return nil, dataset.ErrNotLoaded
	}
	return s.snap, nil
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
}
