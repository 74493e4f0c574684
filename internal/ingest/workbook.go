package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jdelacruz-io/campus-records/internal/grid"
)

// Sheet pairs a worksheet name with its cell grid.
type Sheet struct {
	Name string
	Grid grid.Grid
}

// LoadWorkbook opens an xlsx workbook and returns one grid per sheet, in
// workbook order. Cells come back as display strings; absent cells are empty.
func LoadWorkbook(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			// one unreadable sheet does not fail the workbook
			continue
		}
		sheets = append(sheets, Sheet{Name: name, Grid: grid.Grid(rows)})
	}
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no readable sheets: %s", path)
	}
	return sheets, nil
}
