package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"homely/internal/reports"
)

const (
	// PDFContentType is the MIME type served with document exports.
	PDFContentType = "application/pdf"
	// PDFFilename is the fixed download name.
	PDFFilename = "Report.pdf"
)

// PDF renders the dataset as a one-line-per-item summary document.
// Financial Summary values are formatted as currency with two decimals,
// everything else as plain numbers.
func PDF(reportType string, data []reports.ChartData) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, fmt.Sprintf("%s Summary", reportType))
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 8, fmt.Sprintf("Generated on: %s", time.Now().Format("02 Jan 2006")))
	doc.Ln(12)

	for _, item := range data {
		var line string
		if reportType == reports.TypeFinancialSummary {
			line = fmt.Sprintf("%s: R%.2f", item.Label, item.Value)
		} else {
			line = fmt.Sprintf("%s: %v", item.Label, item.Value)
		}
		doc.Cell(0, 7, line)
		doc.Ln(7)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
