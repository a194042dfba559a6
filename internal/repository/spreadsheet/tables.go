package spreadsheet

import (
	"time"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
)

type skuColumn struct {
	sku dataset.SKU
	idx int
}

func (s *sheet) skuColumns() []skuColumn {
	cols := make([]skuColumn, 0, len(dataset.AllSKUs()))
	for _, sku := range dataset.AllSKUs() {
		if i, ok := s.index(string(sku)); ok {
			cols = append(cols, skuColumn{sku: sku, idx: i})
		}
	}
	return cols
}

func readQuantities(row []cell, cols []skuColumn, report *dataset.SourceReport) map[dataset.SKU]int64 {
	quantities := make(map[dataset.SKU]int64, len(cols))
	for _, col := range cols {
		qty, ok := parseQuantity(cellAt(row, col.idx))
		if !ok {
			report.InvalidQuantity++
		}
		quantities[col.sku] = qty
	}
	return quantities
}

func readOptionalDate(row []cell, idx int, present bool, report *dataset.SourceReport) *time.Time {
	if !present {
		return nil
	}
	d, ok := parseDate(cellAt(row, idx))
	if !ok {
		report.InvalidDates++
	}
	return d
}

func buildOrders(s *sheet) ([]dataset.OrderRecord, dataset.SourceReport, error) {
	var report dataset.SourceReport
	if err := s.require(dataset.OrdersColumns()...); err != nil {
		return nil, report, err
	}

	linkIdx := s.mustIndex(dataset.ColumnLink)
	areaIdx := s.mustIndex(dataset.ColumnArea)
	dateIdx, hasDate := s.index(dataset.ColumnDate)
	skus := s.skuColumns()

	orders := make([]dataset.OrderRecord, 0, len(s.rows))
	for _, row := range s.rows {
		orders = append(orders, dataset.OrderRecord{
			Link:       parseKey(cellAt(row, linkIdx)),
			Area:       cellAt(row, areaIdx).text,
			Date:       readOptionalDate(row, dateIdx, hasDate, &report),
			Quantities: readQuantities(row, skus, &report),
		})
	}
	report.Rows = len(orders)
	return orders, report, nil
}

// buildDespatch also reports whether the sheet carries an AREA column.
func buildDespatch(s *sheet) ([]dataset.DespatchRecord, bool, dataset.SourceReport, error) {
	var report dataset.SourceReport
	if err := s.require(dataset.DespatchColumns()...); err != nil {
		return nil, false, report, err
	}

	linkIdx := s.mustIndex(dataset.ColumnLink)
	departureIdx := s.mustIndex(dataset.ColumnDepartureStatus)
	loadingIdx := s.mustIndex(dataset.ColumnLoadingStatus)
	areaIdx, hasArea := s.index(dataset.ColumnArea)
	dateIdx, hasDate := s.index(dataset.ColumnDate)
	skus := s.skuColumns()

	despatch := make([]dataset.DespatchRecord, 0, len(s.rows))
	for _, row := range s.rows {
		rec := dataset.DespatchRecord{
			Link:            parseKey(cellAt(row, linkIdx)),
			Date:            readOptionalDate(row, dateIdx, hasDate, &report),
			Quantities:      readQuantities(row, skus, &report),
			DepartureStatus: cellAt(row, departureIdx).text,
			LoadingStatus:   cellAt(row, loadingIdx).text,
		}
		if hasArea {
			rec.Area = cellAt(row, areaIdx).text
		}
		despatch = append(despatch, rec)
	}
	report.Rows = len(despatch)
	return despatch, hasArea, report, nil
}

func buildDateIndex(s *sheet) ([]dataset.DateIndexRecord, dataset.SourceReport, error) {
	var report dataset.SourceReport
	if err := s.require(dataset.DateIndexColumns()...); err != nil {
		return nil, report, err
	}

	linkIdx := s.mustIndex(dataset.ColumnLink)
	dateIdx := s.mustIndex(dataset.ColumnDate)
	monthIdx := s.mustIndex(dataset.ColumnMonth)
	routeIdx := s.mustIndex(dataset.ColumnRoute)

	seen := make(map[string]struct{}, len(s.rows))
	index := make([]dataset.DateIndexRecord, 0, len(s.rows))
	for _, row := range s.rows {
		link := parseKey(cellAt(row, linkIdx))
		if _, dup := seen[link]; dup {
			report.DuplicateLinks++
		}
		seen[link] = struct{}{}

		index = append(index, dataset.DateIndexRecord{
			Link:  link,
			Date:  readOptionalDate(row, dateIdx, true, &report),
			Month: cellAt(row, monthIdx).text,
			Route: cellAt(row, routeIdx).text,
		})
	}
	report.Rows = len(index)
	return index, report, nil
}
