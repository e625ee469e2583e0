package models

// SheetData represents the rows read from the first sheet of a workbook.
type SheetData struct {
	// BookName is the workbook file name (no path), empty for streams.
	BookName string `json:"book_name,omitempty"`
	// SheetName is the name of the sheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// Date1904 reports whether date serials use the 1904 date system.
	Date1904 bool `json:"date_1904,omitempty"`
	// Rows contains every row of the sheet in order, the header included.
	Rows []Row `json:"rows,omitempty"`
}
