package report

import "errors"

var (
	ErrNoDataToExport = errors.New("no data to export for the selected date")
)
