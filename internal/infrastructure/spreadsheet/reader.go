package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one data row of an uploaded workbook. Index is the 1-based row
// number as the user sees it in the spreadsheet, so error reports point at
// the right line. Cells are keyed by the normalized header text.
type Row struct {
	Index int
	Cells map[string]string
}

type Reader struct {
	maxRows int
}

func NewReader(maxRows int) *Reader {
	return &Reader{maxRows: maxRows}
}

// Read decodes the first sheet of an xlsx stream into header-keyed rows.
// The first row is treated as the header. Fully empty rows are skipped.
func (r *Reader) Read(src io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rawRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rawRows) == 0 {
		return nil, fmt.Errorf("workbook is empty")
	}

	headers := make([]string, len(rawRows[0]))
	for i, h := range rawRows[0] {
		headers[i] = normalizeHeader(h)
	}

	dataRowCount := len(rawRows) - 1
	if r.maxRows > 0 && dataRowCount > r.maxRows {
		return nil, fmt.Errorf("workbook has %d rows, maximum is %d", dataRowCount, r.maxRows)
	}

	rows := make([]Row, 0, dataRowCount)
	for i, raw := range rawRows[1:] {
		if isEmptyRow(raw) {
			continue
		}

		cells := make(map[string]string, len(headers))
		for j, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if j < len(raw) {
				value = strings.TrimSpace(raw[j])
			}
			cells[header] = value
		}

		rows = append(rows, Row{Index: i + 2, Cells: cells})
	}

	return rows, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
