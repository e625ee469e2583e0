// Package parser reads worksheet content through excelize.
package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ReadOptions configures how a workbook is opened.
type ReadOptions struct {
	// Password decrypts a password-protected workbook.
	Password string
}

// OpenFile reads the first sheet of the workbook at path.
func OpenFile(path string, opts ReadOptions) (*models.SheetData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheet, err := ReadFirstSheet(file, opts)
	if err != nil {
		return nil, err
	}
	sheet.BookName = filepath.Base(path)
	return sheet, nil
}

// ReadFirstSheet reads every row of the first sheet of the workbook in r.
// The workbook is closed before returning; the returned cells are copies.
func ReadFirstSheet(r io.Reader, opts ReadOptions) (*models.SheetData, error) {
	f, err := excelize.OpenReader(r, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoSheets
	}
	sheetName := sheetList[0]

	rows, err := ExtractCells(f, sheetName)
	if err != nil {
		return nil, err
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	return &models.SheetData{
		SheetName: sheetName,
		Date1904:  date1904,
		Rows:      rows,
	}, nil
}

// ExtractCells extracts typed cells from a sheet.
// Every row is returned, empty ones included, so that row order and
// indexes are preserved. excelize trims trailing empty cells, so a row's
// physical cells end at its last non-empty cell.
func ExtractCells(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]models.Cell, len(row))

		for colIdx, cellValue := range row {
			cell := models.Cell{Row: rowNum, Col: colIdx + 1, Raw: cellValue}
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if cellValue != "" {
				cellType, err := f.GetCellType(sheetName, cellName)
				if err != nil {
					return nil, fmt.Errorf("cell %s: %w", cellName, err)
				}
				cell.Kind = classify(cellType)
			} else {
				// Formulas saved without a cached result read as "".
				formula, err := f.GetCellFormula(sheetName, cellName)
				if err != nil {
					return nil, fmt.Errorf("cell %s: %w", cellName, err)
				}
				if formula != "" {
					cell.Kind = models.CellFormula
				}
			}
			cells[colIdx] = cell
		}

		result = append(result, models.Row{Index: rowNum, Cells: cells})
	}

	return result, nil
}

// classify maps an excelize cell type for a non-empty cell to a CellKind.
// Numbers written without an explicit type attribute report CellTypeUnset.
func classify(t excelize.CellType) models.CellKind {
	switch t {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return models.CellString
	case excelize.CellTypeBool:
		return models.CellBool
	case excelize.CellTypeDate:
		return models.CellDate
	case excelize.CellTypeFormula:
		return models.CellFormula
	case excelize.CellTypeError:
		return models.CellError
	default:
		return models.CellNumber
	}
}
