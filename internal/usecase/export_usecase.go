package usecase

import (
	"context"
	"io"
)

// ExportResult describes a finished CSV export.
type ExportResult struct {
	Filename string
	Metrics  []string
	Rows     int
	// Empty is set when the device is known but has no readings that day.
	// Nothing was written in that case.
	Empty bool
}

// ExportUsecase materializes one device-day as CSV.
type ExportUsecase interface {
	// ExportCSV streams the day's readings. open is called once, with the
	// file name, right before the first byte is written, and never when the
	// result is Empty or an error occurs before writing starts.
	ExportCSV(ctx context.Context, deviceID, day string, open func(filename string) io.Writer) (*ExportResult, error)
}
