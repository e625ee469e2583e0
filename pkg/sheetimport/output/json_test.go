package output

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
)

func TestToJSON(t *testing.T) {
	records := []models.Record{
		{
			"NAME":     "John Doe",
			"AMOUNT":   123,
			"CURRENCY": decimal.RequireFromString("1500.5"),
			"DATE":     time.Date(2014, 10, 10, 0, 0, 0, 0, time.UTC),
			"MISSING":  nil,
		},
	}

	data, err := ToJSON(records, false)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"AMOUNT":123,"CURRENCY":"1500.5","DATE":"2014-10-10T00:00:00Z","MISSING":null,"NAME":"John Doe"}]`, string(data))
}

func TestToJSONEmpty(t *testing.T) {
	data, err := ToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON([]models.Record{{"NAME": "John Doe"}}, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
	assert.JSONEq(t, `[{"NAME":"John Doe"}]`, string(data))
}

func TestSheetToJSON(t *testing.T) {
	sheet := &models.SheetData{
		SheetName: "Sheet1",
		Rows: []models.Row{
			{Index: 1, Cells: []models.Cell{{Row: 1, Col: 1, Kind: models.CellString, Raw: "NAME"}}},
		},
	}

	data, err := SheetToJSON(sheet, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sheet_name":"Sheet1","rows":[{"r":1,"cells":[{"r":1,"c":1,"kind":"string","raw":"NAME"}]}]}`, string(data))
}
