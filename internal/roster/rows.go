package roster

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "rollcall/internal/errors"
)

// RowSource yields the records of one attendance export as uniform
// string slices, regardless of the on-disk format. Rows are variable
// width: short rows are tolerated and excess cells are ignored
// downstream.
type RowSource interface {
	Rows() ([][]string, error)
}

// NewRowSource picks the format adapter for the file by extension.
func NewRowSource(path string, data []byte) RowSource {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return &workbookSource{data: data}
	default:
		return &delimitedSource{data: data}
	}
}

// delimitedSource reads delimited text exports. The delimiter is
// detected once per file from the first non-blank line and applied to
// every row.
type delimitedSource struct {
	data []byte
}

func (s *delimitedSource) Rows() ([][]string, error) {
	text, err := DecodeText(s.data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = DetectDelimiter(text)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewDecodeError("failed to read delimited rows", err)
	}
	return rows, nil
}

// workbookSource reads the first sheet of a spreadsheet workbook.
// excelize renders each cell's native value (number, boolean, date,
// duration, error marker) to its string representation, so workbook rows
// join the same parsing path as delimited text.
type workbookSource struct {
	data []byte
}

func (s *workbookSource) Rows() ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(s.data))
	if err != nil {
		return nil, apperrors.NewDecodeError("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.Newf(apperrors.KindDecode, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewDecodeError("failed to read worksheet", err)
	}
	return rows, nil
}
