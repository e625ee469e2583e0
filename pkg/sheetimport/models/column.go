package models

import (
	"errors"
	"fmt"
)

// ColumnType is the semantic type a column's cells are converted to.
type ColumnType string

const (
	// TypeText keeps the cell text verbatim.
	TypeText ColumnType = "text"
	// TypeInteger truncates numeric content to an int.
	TypeInteger ColumnType = "integer"
	// TypeDecimal converts numeric content to an exact decimal.
	TypeDecimal ColumnType = "decimal"
	// TypeDate converts date content to midnight in the reference location.
	TypeDate ColumnType = "date"
	// TypeBoolean converts boolean content to a bool.
	TypeBoolean ColumnType = "boolean"
)

// ErrInvalidColumnType indicates a type tag outside the supported set.
var ErrInvalidColumnType = errors.New("invalid column type")

// Valid reports whether t is one of the supported column types.
func (t ColumnType) Valid() bool {
	switch t {
	case TypeText, TypeInteger, TypeDecimal, TypeDate, TypeBoolean:
		return true
	}
	return false
}

// Columns maps a header name, exactly as written in the header cell, to the
// type its cells are converted to. It is never modified during extraction.
type Columns map[string]ColumnType

// Validate checks that every entry has a non-empty name and a supported type.
func (c Columns) Validate() error {
	for name, typ := range c {
		if name == "" {
			return errors.New("column name must not be empty")
		}
		if !typ.Valid() {
			return fmt.Errorf("column %q: %w: %q", name, ErrInvalidColumnType, string(typ))
		}
	}
	return nil
}

// Record is one converted data row keyed by column name. A nil value marks
// a missing cell.
type Record map[string]any
