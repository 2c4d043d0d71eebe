package report

import "errors"

var (
	ErrInvalidMonth      = errors.New("month must be in YYYY-MM format")
	ErrUnsupportedFormat = errors.New("export format must be csv or xlsx")
	ErrReportGeneration  = errors.New("failed to generate report")
)
