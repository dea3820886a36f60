package exporter

import (
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"rollcall/internal/attendance"
	apperrors "rollcall/internal/errors"
)

// Relative column widths for the PDF table, wide name columns and
// narrow tallies.
var pdfColumnWeights = []float64{3, 3, 2, 1, 1, 1, 2}

// WritePDF renders the report as a paginated PDF table. The output
// extension is forced to .pdf regardless of the requested path.
func WritePDF(path string, rep *attendance.Report) error {
	path = forcePDFExtension(path)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Attendance Report", true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(108, 113, 196)
	pdf.CellFormat(0, 12, "Attendance Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	var totalWeight float64
	for _, w := range pdfColumnWeights {
		totalWeight += w
	}
	widths := make([]float64, len(pdfColumnWeights))
	for i, w := range pdfColumnWeights {
		widths[i] = usable * w / totalWeight
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(38, 139, 210)
	for i, header := range reportColumns {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(88, 110, 117)
	pdf.SetFillColor(238, 238, 238)
	for i, student := range rep.Students {
		fill := i%2 == 1
		row := []string{
			student.Name,
			student.Surname,
			student.ID,
			strconv.Itoa(student.Normal),
			strconv.Itoa(student.Late),
			strconv.Itoa(student.Absent),
			formatScore(student.Score, rep.TotalPoints),
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], 7, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return apperrors.NewWriteError("failed to write PDF file", err)
	}
	return nil
}

func forcePDFExtension(path string) string {
	dot := strings.LastIndexByte(path, '.')
	slash := strings.LastIndexAny(path, "/\\")
	if dot > slash {
		path = path[:dot]
	}
	return path + ".pdf"
}
