// Package output serializes extraction results.
package output

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON serializes records as a JSON array. Keys are sorted, decimals are
// written as strings and dates in RFC 3339.
func ToJSON(records []models.Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	return marshal(records, pretty)
}

// SheetToJSON serializes the raw cells of a sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
