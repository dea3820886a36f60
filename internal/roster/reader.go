package roster

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"strings"

	apperrors "rollcall/internal/errors"
)

// Reader ingests session files into participant events.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a session reader.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadSession parses one attendance export into its deduplicated
// participant events, ordered by join time so the earliest event comes
// first. A file whose header lacks a mandatory column yields an empty
// slice, not an error.
func (r *Reader) ReadSession(ctx context.Context, path string) ([]Participant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewSourceError("failed to read attendance file", err)
	}

	rows, err := NewRowSource(path, data).Rows()
	if err != nil {
		return nil, err
	}

	participants, err := extractParticipants(rows)
	if err != nil {
		return nil, err
	}

	deduped := Dedupe(participants)
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].FirstJoin.Before(deduped[j].FirstJoin)
	})

	r.logger.DebugContext(ctx, "session file parsed",
		slog.String("file", path),
		slog.Int("rows", len(rows)),
		slog.Int("participants", len(deduped)),
		slog.Int("duplicates_dropped", len(participants)-len(deduped)))

	return deduped, nil
}

// extractParticipants walks the rows, locating the header as the first
// row containing a cell exactly equal to "Name"; everything before it
// is discarded.
func extractParticipants(rows [][]string) ([]Participant, error) {
	headerIndex := -1
	var cols columns
	for i, row := range rows {
		if found, ok := locateHeader(row); ok {
			headerIndex = i
			cols = found
			break
		}
	}
	if headerIndex < 0 {
		return nil, nil
	}

	var participants []Participant
	for _, row := range rows[headerIndex+1:] {
		p, err := parseRow(row, cols)
		if err != nil {
			return nil, err
		}
		if p != nil {
			participants = append(participants, *p)
		}
	}
	return participants, nil
}

// locateHeader reports whether the row is the header row. A header row
// missing the mandatory "First Join" column still counts as the header;
// it just maps no participants.
func locateHeader(row []string) (columns, bool) {
	isHeader := false
	for _, cellValue := range row {
		if cellValue == columnName {
			isHeader = true
			break
		}
	}
	if !isHeader {
		return columns{}, false
	}

	trimmed := make([]string, len(row))
	for i, cellValue := range row {
		trimmed[i] = strings.TrimSpace(cellValue)
	}
	cols, _ := findColumns(trimmed)
	return cols, true
}
