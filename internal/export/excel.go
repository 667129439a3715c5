package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"homely/internal/reports"
)

const (
	// ExcelContentType is the MIME type served with spreadsheet exports.
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// ExcelFilename is the fixed download name.
	ExcelFilename = "Report.xlsx"

	sheetName = "Report Data"
)

// Excel renders the dataset as a two-column workbook, header row first,
// rows in input order.
func Excel(data []reports.ChartData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheetName, "A1", "Label"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, "B1", "Value"); err != nil {
		return nil, err
	}
	for i, item := range data {
		row := i + 2
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), item.Label); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Value); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
