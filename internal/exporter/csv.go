package exporter

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strconv"

	"rollcall/internal/attendance"
	apperrors "rollcall/internal/errors"
)

// WriteCSV writes the report as a CSV file. The file starts with a
// UTF-8 BOM so Excel opens accented names correctly.
func WriteCSV(path string, rep *attendance.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewWriteError("failed to create CSV file", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return apperrors.NewWriteError("failed to write CSV file", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(reportColumns); err != nil {
		return apperrors.NewWriteError("failed to write CSV header", err)
	}
	for _, student := range rep.Students {
		record := []string{
			student.Name,
			student.Surname,
			student.ID,
			strconv.Itoa(student.Normal),
			strconv.Itoa(student.Late),
			strconv.Itoa(student.Absent),
			formatScore(student.Score, rep.TotalPoints),
		}
		if err := writer.Write(record); err != nil {
			return apperrors.NewWriteError("failed to write CSV row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewWriteError("failed to finalize CSV file", err)
	}

	slog.Debug("CSV report written",
		slog.String("path", path),
		slog.Int("students", len(rep.Students)))
	return nil
}
