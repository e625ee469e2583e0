package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// isoLayouts lists the layouts accepted for cells stored with t="d".
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ExcelSerialToDate converts an Excel serial date to the start of its
// calendar day in loc. The time-of-day fraction is discarded.
func ExcelSerialToDate(serial float64, date1904 bool, loc *time.Location) (time.Time, error) {
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t, loc), nil
}

// ParseISODate parses an ISO 8601 date or date-time string and returns the
// start of the written calendar day in loc.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return StartOfDay(t, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// StartOfDay returns midnight of t's calendar day in loc. A nil loc means UTC.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
