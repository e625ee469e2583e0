package parser

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "C2", true)
	f.SetCellValue(sheetName, "B4", "Text")

	rows, err := ExtractCells(f, sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, models.Cell{Row: 1, Col: 1, Kind: models.CellString, Raw: "Header1"}, rows[0].Cells[0])

	require.Len(t, rows[1].Cells, 3)
	assert.Equal(t, models.CellNumber, rows[1].Cells[0].Kind)
	assert.Equal(t, "100", rows[1].Cells[0].Raw)
	assert.Equal(t, models.CellNumber, rows[1].Cells[1].Kind)
	assert.Equal(t, "200.5", rows[1].Cells[1].Raw)
	assert.Equal(t, models.CellBool, rows[1].Cells[2].Kind)

	// Row 3 has no cells but keeps its place.
	assert.Equal(t, 3, rows[2].Index)
	assert.Empty(t, rows[2].Cells)

	// A1 is absent in row 4 and is padded as blank.
	require.Len(t, rows[3].Cells, 2)
	assert.Equal(t, models.CellBlank, rows[3].Cells[0].Kind)
	assert.Equal(t, "B4", rows[3].Cells[1].Name())
	assert.Equal(t, models.CellString, rows[3].Cells[1].Kind)
}

func TestExtractCellsFormulaWithoutResult(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "NAME")
	require.NoError(t, f.SetCellFormula("Sheet1", "B2", "1+1"))

	rows, err := ExtractCells(f, "Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, rows[1].Cells, 2)

	assert.Equal(t, models.CellBlank, rows[1].Cells[0].Kind)
	assert.Equal(t, models.CellFormula, rows[1].Cells[1].Kind)
	assert.Equal(t, "", rows[1].Cells[1].Raw)
}

func TestReadFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "NAME")
	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	f.SetCellValue("Other", "A1", "IGNORED")

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	sheet, err := ReadFirstSheet(bytes.NewReader(buf.Bytes()), ReadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", sheet.SheetName)
	assert.False(t, sheet.Date1904)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "NAME", sheet.Rows[0].Cells[0].Raw)
}

func TestOpenFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "NAME")

	tmpFile := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	sheet, err := OpenFile(tmpFile, ReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", sheet.BookName)
	assert.Equal(t, "Sheet1", sheet.SheetName)
}

func TestReadFirstSheetInvalid(t *testing.T) {
	_, err := ReadFirstSheet(bytes.NewReader([]byte("plain text")), ReadOptions{})
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input    excelize.CellType
		expected models.CellKind
	}{
		{excelize.CellTypeSharedString, models.CellString},
		{excelize.CellTypeInlineString, models.CellString},
		{excelize.CellTypeBool, models.CellBool},
		{excelize.CellTypeDate, models.CellDate},
		{excelize.CellTypeFormula, models.CellFormula},
		{excelize.CellTypeError, models.CellError},
		{excelize.CellTypeNumber, models.CellNumber},
		{excelize.CellTypeUnset, models.CellNumber},
	}

	for _, tt := range tests {
		result := classify(tt.input)
		if result != tt.expected {
			t.Errorf("classify(%v) = %s, expected %s", tt.input, result, tt.expected)
		}
	}
}
