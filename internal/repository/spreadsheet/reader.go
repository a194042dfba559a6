package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// cell keeps the displayed text of a spreadsheet cell next to its stored
// value. For xlsx the two differ for dates and formatted numbers; other
// formats carry the same string in both.
type cell struct {
	text string
	raw  string
}

type sheet struct {
	header  []string
	rows    [][]cell
	columns map[string]int
}

// readSheet decodes one worksheet from data, choosing the decoder by the
// extension of filename. An empty sheetName selects the first sheet.
func readSheet(data []byte, filename, sheetName string) (*sheet, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm":
		return readXLSX(data, sheetName)
	case ".xls":
		return readXLS(data, sheetName)
	case ".csv":
		return readCSV(data)
	default:
		return nil, fmt.Errorf("%w: %s", dataset.ErrUnsupportedFormat, ext)
	}
}

func readXLSX(data []byte, sheetName string) (*sheet, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dataset.ErrFileAccess, err)
	}
	defer func() { _ = file.Close() }()

	name := sheetName
	if name == "" {
		name = file.GetSheetName(0)
	}
	if idx, err := file.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", dataset.ErrSheetNotFound, name)
	}

	text, err := file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	raw, err := file.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	rows := make([][]cell, len(text))
	for i, textRow := range text {
		var rawRow []string
		if i < len(raw) {
			rawRow = raw[i]
		}
		row := make([]cell, len(textRow))
		for j, v := range textRow {
			c := cell{text: v, raw: v}
			if j < len(rawRow) {
				c.raw = rawRow[j]
			}
			row[j] = c
		}
		rows[i] = row
	}
	return newSheet(rows)
}

func readXLS(data []byte, sheetName string) (*sheet, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dataset.ErrFileAccess, err)
	}

	var ws *xls.WorkSheet
	for i := 0; i < workbook.NumSheets(); i++ {
		candidate := workbook.GetSheet(i)
		if candidate == nil {
			continue
		}
		if sheetName == "" || strings.EqualFold(strings.TrimSpace(candidate.Name), sheetName) {
			ws = candidate
			break
		}
	}
	if ws == nil {
		return nil, fmt.Errorf("%w: %q", dataset.ErrSheetNotFound, sheetName)
	}

	rows := make([][]cell, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]cell, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			v := row.Col(j)
			cells[j] = cell{text: v, raw: v}
		}
		rows = append(rows, cells)
	}
	return newSheet(rows)
}

func readCSV(data []byte) (*sheet, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	rows := make([][]cell, len(records))
	for i, record := range records {
		row := make([]cell, len(record))
		for j, v := range record {
			if i == 0 && j == 0 {
				v = strings.TrimPrefix(v, "\ufeff")
			}
			row[j] = cell{text: v, raw: v}
		}
		rows[i] = row
	}
	return newSheet(rows)
}

// newSheet takes the first row as header and drops fully blank data rows.
func newSheet(rows [][]cell) (*sheet, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, dataset.ErrEmptySource
	}

	s := &sheet{
		header:  make([]string, len(rows[0])),
		columns: make(map[string]int, len(rows[0])),
	}
	for i, c := range rows[0] {
		h := strings.TrimSpace(c.text)
		s.header[i] = h
		key := normalizeHeader(h)
		if key == "" {
			continue
		}
		if _, exists := s.columns[key]; !exists {
			s.columns[key] = i
		}
	}

	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		s.rows = append(s.rows, row)
	}
	return s, nil
}

func normalizeHeader(header string) string {
	return strings.ToUpper(strings.Join(strings.Fields(header), " "))
}

func isBlankRow(row []cell) bool {
	for _, c := range row {
		if strings.TrimSpace(c.text) != "" || strings.TrimSpace(c.raw) != "" {
			return false
		}
	}
	return true
}

// index returns the position of column name, matched case-insensitively.
func (s *sheet) index(name string) (int, bool) {
	i, ok := s.columns[normalizeHeader(name)]
	return i, ok
}

// require fails with ErrSchema listing every absent column.
func (s *sheet) require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := s.index(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", dataset.ErrSchema, strings.Join(missing, ", "))
	}
	return nil
}

func (s *sheet) mustIndex(name string) int {
	i, _ := s.index(name)
	return i
}

func cellAt(row []cell, idx int) cell {
	if idx < 0 || idx >= len(row) {
		return cell{}
	}
	return cell{text: strings.TrimSpace(row[idx].text), raw: strings.TrimSpace(row[idx].raw)}
}
