package sheetimport

import (
	"io"

	"github.com/ukaji3/sheetimport/pkg/sheetimport/models"
	"github.com/ukaji3/sheetimport/pkg/sheetimport/parser"
)

// Extractor converts the first sheet of a workbook into records using a
// fixed column configuration. It holds no mutable state and may be shared
// by concurrent callers.
type Extractor struct {
	columns models.Columns
	opts    Options
}

// New creates an Extractor for the given column configuration. The map is
// read but never modified; callers must not modify it while extracting.
func New(columns models.Columns, opts ...Option) *Extractor {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Extractor{columns: columns, opts: o}
}

// Columns returns the column configuration.
func (e *Extractor) Columns() models.Columns {
	return e.columns
}

// ExtractFile extracts records from the workbook at path.
func (e *Extractor) ExtractFile(path string) ([]models.Record, error) {
	sheet, err := parser.OpenFile(path, parser.ReadOptions{Password: e.opts.Password})
	if err != nil {
		return nil, NewExtractionError("", StageOpen, &SourceAccessError{Source: path, Err: err})
	}
	return e.ExtractSheet(sheet)
}

// ExtractReader extracts records from a workbook read from r.
func (e *Extractor) ExtractReader(r io.Reader) ([]models.Record, error) {
	sheet, err := parser.ReadFirstSheet(r, parser.ReadOptions{Password: e.opts.Password})
	if err != nil {
		return nil, NewExtractionError("", StageOpen, &SourceAccessError{Source: "stream", Err: err})
	}
	return e.ExtractSheet(sheet)
}

// ExtractSheet converts rows that were already read. The first row is the
// header; every header name must be configured. Blank rows are skipped and
// cells beyond the header width are ignored. A nil sheet yields no records.
func (e *Extractor) ExtractSheet(sheet *models.SheetData) ([]models.Record, error) {
	if sheet == nil {
		return []models.Record{}, nil
	}

	logger := e.opts.logger().With("sheet", sheet.SheetName)
	coercer := Coercer{Location: e.opts.location(), Date1904: sheet.Date1904}

	records := []models.Record{}
	if len(sheet.Rows) == 0 {
		return records, nil
	}

	header, err := e.resolveHeader(sheet.Rows[0])
	if err != nil {
		return nil, NewExtractionError(sheet.SheetName, StageHeader, err)
	}
	logger.Debug("header resolved", "columns", header)

	for _, row := range sheet.Rows[1:] {
		if IsEmptyRow(row) {
			logger.Debug("skipping blank row", "row", row.Index)
			continue
		}

		record, err := e.convertRow(row, header, coercer)
		if err != nil {
			return nil, NewExtractionError(sheet.SheetName, StageRows, err)
		}
		records = append(records, record)
	}

	logger.Info("extracted rows", "records", len(records))
	return records, nil
}

// resolveHeader reads the header names left to right and checks each one
// against the configuration.
func (e *Extractor) resolveHeader(row models.Row) ([]string, error) {
	names := make([]string, 0, len(row.Cells))
	for _, cell := range row.Cells {
		name, _ := DisplayString(cell)
		if _, ok := e.columns[name]; !ok {
			return nil, &UnrecognizedColumnError{Column: name}
		}
		names = append(names, name)
	}
	return names, nil
}

func (e *Extractor) convertRow(row models.Row, header []string, coercer Coercer) (models.Record, error) {
	n := min(len(row.Cells), len(header))
	record := make(models.Record, n)
	for i := 0; i < n; i++ {
		name := header[i]
		value, err := coercer.Value(row.Cell(i), e.columns[name])
		if err != nil {
			return nil, err
		}
		record[name] = value
	}
	return record, nil
}
