package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"homely/internal/reports"
)

var sampleData = []reports.ChartData{
	{Label: "2024-01", Value: 150},
	{Label: "2024-02", Value: 20},
}

func TestExcel(t *testing.T) {
	raw, err := Excel(sampleData)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Label", "Value"}, rows[0])
	assert.Equal(t, "2024-01", rows[1][0])
	assert.Equal(t, "150", rows[1][1])
	assert.Equal(t, "2024-02", rows[2][0])
	assert.Equal(t, "20", rows[2][1])
}

func TestExcel_EmptyDataset(t *testing.T) {
	raw, err := Excel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
	assert.Equal(t, []string{"Label", "Value"}, rows[0])
}

func TestPDF(t *testing.T) {
	raw, err := PDF(reports.TypeFinancialSummary, sampleData)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestPDF_EmptyDataset(t *testing.T) {
	raw, err := PDF(reports.TypeUserActivity, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
