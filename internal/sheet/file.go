package sheet

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// FileLoader reads a local export, picking the parser by file extension.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (l *FileLoader) Load(_ context.Context) (*Table, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("opening sheet file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(l.path)); ext {
	case ".csv", ".txt":
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f)
	case ".xls":
		return ReadXLS(f)
	default:
		return nil, fmt.Errorf("unsupported sheet file: %s", filepath.Base(l.path))
	}
}

// ReadXLSX reads the first worksheet of an Excel workbook.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmpty
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}

	return fromStrings(rows)
}

// maxXLSCols is the column limit of the BIFF8 format.
const maxXLSCols = 256

// ReadXLS reads the first worksheet of a legacy Excel 97 workbook.
func ReadXLS(r io.ReadSeeker) (*Table, error) {
	wb, err := xls.OpenReader(r, "cp1252")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	if wb == nil {
		return nil, fmt.Errorf("open xls: no workbook stream")
	}

	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, ErrEmpty
	}

	rows := make([]*xls.Row, int(ws.MaxRow)+1)
	for i := range rows {
		rows[i] = xlsRow(ws, i)
	}

	if rows[0] == nil {
		return nil, ErrEmpty
	}

	width := xlsWidth(rows)
	records := make([][]string, 0, len(rows))

	for _, row := range rows {
		cells := make([]string, width)

		if row != nil {
			for j := range width {
				cells[j] = row.Col(j)
			}
		}

		records = append(records, cells)
	}

	return fromStrings(records)
}

// xlsRow returns row i, or nil when the sheet has no cells on it.
// WorkSheet.Row dereferences rows it does not hold.
func xlsRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()

	return ws.Row(i)
}

// xlsWidth finds the last non-empty column over all rows. Row.LastCol is
// zero for rows written without a ROW record, so the cells are scanned.
func xlsWidth(rows []*xls.Row) int {
	width := 0

	for _, row := range rows {
		if row == nil {
			continue
		}

		for j := maxXLSCols - 1; j >= width; j-- {
			if row.Col(j) != "" {
				width = j + 1
				break
			}
		}
	}

	return width
}
