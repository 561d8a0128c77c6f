package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
)

// readXLSX loads the first sheet of a workbook. Cell values come back as
// formatted strings; ragged rows are padded against the header like CSV
// input.
func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, clierrors.NewParseError(path, 0, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, clierrors.NewParseError(path, 0, fmt.Errorf("workbook has no sheets"))
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, clierrors.NewParseError(path, 0, err)
	}

	return fromRecords(path, records)
}
