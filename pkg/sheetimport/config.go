package sheetimport

import (
	"fmt"
	"os"

	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
	"gopkg.in/yaml.v3"
)

// LoadColumns reads a column configuration file.
//
// The file is a YAML (or JSON) mapping of header name to column type:
//
//	NAME: text
//	AMOUNT: integer
//	DATE: date
func LoadColumns(path string) (models.Columns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	columns, err := ParseColumns(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return columns, nil
}

// ParseColumns parses and validates a column configuration document.
func ParseColumns(data []byte) (models.Columns, error) {
	var columns models.Columns
	if err := yaml.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("parse columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("parse columns: no columns defined")
	}
	if err := columns.Validate(); err != nil {
		return nil, err
	}
	return columns, nil
}
