// Package validation provides input validation helpers shared by the
// configuration layer and the CLI.
package validation

import (
	"fmt"

	"github.com/structcred/abf-portal/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format %q; supported formats are %s and %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

// ValidateReportType checks that the requested report type is supported.
func ValidateReportType(report string) error {
	switch report {
	case constants.ReportProjection, constants.ReportWaterfall,
		constants.ReportDeals, constants.ReportSpreads:
		return nil
	default:
		return fmt.Errorf("invalid report type %q; supported reports are %s, %s, %s, and %s",
			report, constants.ReportProjection, constants.ReportWaterfall,
			constants.ReportDeals, constants.ReportSpreads)
	}
}
