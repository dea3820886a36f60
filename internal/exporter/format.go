// Package exporter writes a finished attendance report to disk as CSV,
// plain text, or PDF.
package exporter

import (
	"fmt"

	apperrors "rollcall/internal/errors"
)

// Format selects the report output format.
type Format int

const (
	FormatCSV Format = iota
	FormatText
	FormatPDF
)

// String returns the format's flag spelling.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatText:
		return "txt"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat parses a format name from a flag or config value. "text"
// is accepted as an alias for "txt".
func ParseFormat(name string) (Format, error) {
	switch name {
	case "csv":
		return FormatCSV, nil
	case "txt", "text":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return 0, apperrors.Newf(apperrors.KindConfig,
			"unknown report format %q: use csv, txt, or pdf", name)
	}
}

// reportColumns are the export columns, shared by every format. Email
// is intentionally not exported.
var reportColumns = []string{"Name", "Surname", "ID", "Normal", "Late", "Absent", "Score"}

// formatScore renders a score cell as achieved over attainable points.
func formatScore(score, totalPoints float64) string {
	return fmt.Sprintf("%.1f/%.1f", score, totalPoints)
}
