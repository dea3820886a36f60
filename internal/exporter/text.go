package exporter

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"rollcall/internal/attendance"
	apperrors "rollcall/internal/errors"
)

// WriteText writes the report as tab-separated plain text.
func WriteText(path string, rep *attendance.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewWriteError("failed to create text file", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	fmt.Fprintln(writer, strings.Join(reportColumns, "\t"))
	for _, student := range rep.Students {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			student.Name,
			student.Surname,
			student.ID,
			student.Normal,
			student.Late,
			student.Absent,
			formatScore(student.Score, rep.TotalPoints))
	}

	if err := writer.Flush(); err != nil {
		return apperrors.NewWriteError("failed to write text file", err)
	}
	return nil
}
