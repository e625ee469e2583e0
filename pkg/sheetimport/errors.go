package sheetimport

import (
	"fmt"

	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/parser"
)

// ErrNoSheets indicates the workbook contains no worksheet.
var ErrNoSheets = parser.ErrNoSheets

// ErrInvalidColumnType indicates a type tag outside the supported set.
var ErrInvalidColumnType = models.ErrInvalidColumnType

// Extraction stages reported by ExtractionError.
const (
	StageOpen   = "open"
	StageHeader = "header"
	StageRows   = "rows"
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Stage     string // "open", "header", "rows"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, stage string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}

// SourceAccessError indicates the document could not be opened or read as a
// spreadsheet.
type SourceAccessError struct {
	Source string
	Err    error
}

func (e *SourceAccessError) Error() string {
	return fmt.Sprintf("cannot read spreadsheet %s: %v", e.Source, e.Err)
}

func (e *SourceAccessError) Unwrap() error {
	return e.Err
}

// UnrecognizedColumnError indicates a header cell naming a column missing
// from the column configuration.
type UnrecognizedColumnError struct {
	Column string
}

func (e *UnrecognizedColumnError) Error() string {
	return fmt.Sprintf("column '%s' is not a recognized column", e.Column)
}

// ConversionError indicates a cell whose content cannot be converted to the
// type declared for its column.
type ConversionError struct {
	Cell string // A1 reference
	Type models.ColumnType
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cell %s: cannot convert to %s: %v", e.Cell, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
