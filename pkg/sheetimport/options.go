// Package sheetimport converts the rows of a spreadsheet into typed records
// keyed by the names in its header row.
package sheetimport

import (
	"io"
	"log/slog"
	"time"
)

// Options configures extraction behavior.
type Options struct {
	// Location is the reference time zone for date columns.
	// If nil, UTC is used.
	Location *time.Location
	// Password decrypts a password-protected workbook.
	Password string
	// Logger receives progress messages. If nil, nothing is logged.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Location: time.UTC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLocation sets the reference time zone for date columns.
func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

// WithPassword sets the password used to open encrypted workbooks.
func WithPassword(password string) Option {
	return func(o *Options) {
		o.Password = password
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func (o Options) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.UTC
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
