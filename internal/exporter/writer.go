package exporter

import (
	"rollcall/internal/attendance"
	apperrors "rollcall/internal/errors"
)

// Write dispatches the report to the writer for the requested format.
func Write(path string, format Format, rep *attendance.Report) error {
	switch format {
	case FormatCSV:
		return WriteCSV(path, rep)
	case FormatText:
		return WriteText(path, rep)
	case FormatPDF:
		return WritePDF(path, rep)
	default:
		return apperrors.Newf(apperrors.KindConfig, "unknown report format %q", format)
	}
}
