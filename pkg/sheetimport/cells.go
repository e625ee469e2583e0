package sheetimport

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/parser"
)

// DisplayString renders a cell as text. ok is false for blank cells only,
// which is what decides whether a row is empty.
func DisplayString(cell models.Cell) (s string, ok bool) {
	switch cell.Kind {
	case models.CellBlank:
		return "", false
	case models.CellBool:
		if cell.Raw == "1" || strings.EqualFold(cell.Raw, "true") {
			return "TRUE", true
		}
		return "FALSE", true
	default:
		return cell.Raw, true
	}
}

// IsEmptyRow reports whether no cell of the row has a display string.
func IsEmptyRow(row models.Row) bool {
	for _, cell := range row.Cells {
		if _, ok := DisplayString(cell); ok {
			return false
		}
	}
	return true
}

// Coercer converts cells to column types. Its zero value converts dates
// using the 1900 date system in UTC.
type Coercer struct {
	// Location is the reference time zone for dates.
	Location *time.Location
	// Date1904 selects the 1904 date system for date serials.
	Date1904 bool
}

// Value converts cell to typ. Blank cells, and formulas with no cached
// result, yield nil for every type but text, which yields an empty string.
func (c Coercer) Value(cell models.Cell, typ models.ColumnType) (any, error) {
	if !typ.Valid() {
		return nil, conversionError(cell, typ, models.ErrInvalidColumnType)
	}

	// A formula without a cached result carries no value to convert.
	if cell.Kind == models.CellBlank || (cell.Kind == models.CellFormula && cell.Raw == "") {
		if typ == models.TypeText {
			return "", nil
		}
		return nil, nil
	}

	var (
		v   any
		err error
	)
	switch typ {
	case models.TypeText:
		v, _ = DisplayString(cell)
	case models.TypeInteger:
		v, err = toInt(cell)
	case models.TypeDecimal:
		v, err = toDecimal(cell)
	case models.TypeDate:
		v, err = c.toDate(cell)
	case models.TypeBoolean:
		v, err = toBool(cell)
	}
	if err != nil {
		return nil, conversionError(cell, typ, err)
	}
	return v, nil
}

func conversionError(cell models.Cell, typ models.ColumnType, err error) *ConversionError {
	return &ConversionError{Cell: cell.Name(), Type: typ, Err: err}
}

// numericText returns the text of a cell that may hold a number.
func numericText(cell models.Cell) (string, error) {
	switch cell.Kind {
	case models.CellNumber, models.CellFormula, models.CellString:
		return strings.TrimSpace(cell.Raw), nil
	default:
		return "", fmt.Errorf("%s cell %q is not numeric", cell.Kind, cell.Raw)
	}
}

func toInt(cell models.Cell) (int, error) {
	s, err := numericText(cell)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, fmt.Errorf("%v is out of integer range", f)
	}
	return int(f), nil
}

func toDecimal(cell models.Cell) (decimal.Decimal, error) {
	s, err := numericText(cell)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(s)
}

func (c Coercer) toDate(cell models.Cell) (time.Time, error) {
	switch cell.Kind {
	case models.CellDate:
		return parser.ParseISODate(cell.Raw, c.Location)
	case models.CellNumber, models.CellFormula:
		serial, err := cast.ToFloat64E(strings.TrimSpace(cell.Raw))
		if err != nil {
			return time.Time{}, err
		}
		return parser.ExcelSerialToDate(serial, c.Date1904, c.Location)
	case models.CellString:
		return parser.ParseISODate(cell.Raw, c.Location)
	default:
		return time.Time{}, fmt.Errorf("%s cell %q is not a date", cell.Kind, cell.Raw)
	}
}

func toBool(cell models.Cell) (bool, error) {
	if cell.Kind == models.CellError || cell.Kind == models.CellDate {
		return false, fmt.Errorf("%s cell %q is not a boolean", cell.Kind, cell.Raw)
	}
	return cast.ToBoolE(strings.TrimSpace(cell.Raw))
}
