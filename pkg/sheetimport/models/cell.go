// Package models defines data structures for spreadsheet row import.
package models

import "github.com/xuri/excelize/v2"

// CellKind classifies the content stored in a cell.
type CellKind int

const (
	// CellBlank is an absent or empty cell.
	CellBlank CellKind = iota
	// CellString holds shared or inline text.
	CellString
	// CellNumber holds a numeric value, including date serials.
	CellNumber
	// CellBool holds a boolean stored as "1" or "0".
	CellBool
	// CellDate holds an ISO 8601 date string.
	CellDate
	// CellFormula holds the cached string result of a formula.
	CellFormula
	// CellError holds an error value such as #N/A.
	CellError
)

var cellKindNames = [...]string{"blank", "string", "number", "bool", "date", "formula", "error"}

func (k CellKind) String() string {
	if k < 0 || int(k) >= len(cellKindNames) {
		return "unknown"
	}
	return cellKindNames[k]
}

// MarshalText encodes the kind by name.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Cell is a single stored cell copied out of a worksheet.
type Cell struct {
	// Row is the row index (1-based).
	Row int `json:"r"`
	// Col is the column index (1-based).
	Col int `json:"c"`
	// Kind classifies Raw.
	Kind CellKind `json:"kind"`
	// Raw is the unformatted cell value.
	Raw string `json:"raw,omitempty"`
}

// Name returns the A1-style reference of the cell, e.g. "B2".
func (c Cell) Name() string {
	name, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		return "?"
	}
	return name
}

// Row is one worksheet row.
type Row struct {
	// Index is the row index (1-based).
	Index int `json:"r"`
	// Cells holds the physical cells of the row, left to right.
	Cells []Cell `json:"cells"`
}

// Cell returns the cell at the 0-based position i. Positions without a
// stored cell, including those past the end of the row, yield a blank cell.
func (r Row) Cell(i int) Cell {
	if i >= 0 && i < len(r.Cells) {
		return r.Cells[i]
	}
	return Cell{Row: r.Index, Col: i + 1, Kind: CellBlank}
}
