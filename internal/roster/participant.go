package roster

import (
	"strings"
	"time"

	apperrors "rollcall/internal/errors"
)

// Required and optional header column names, matched case- and
// spelling-exact against the export's header row.
const (
	columnName      = "Name"
	columnFirstJoin = "First Join"
	columnEmail     = "Email"
)

// joinTimeLayouts are the accepted join-timestamp patterns, tried in
// order. Two-digit and four-digit years are both produced by Teams
// exports depending on locale settings.
var joinTimeLayouts = []string{
	"1/2/06, 3:04:05 PM",
	"1/2/2006, 3:04:05 PM",
}

// Participant is one parsed join record for one person in one session.
// It exists only during ingestion of a single session file.
type Participant struct {
	Name      string
	Surname   string
	ID        string
	Email     string
	FirstJoin time.Time
}

// Key returns the identity key used for deduplication within a session
// and aggregation across sessions: the email-local-part token if
// present, else the raw email, else the full name.
func (p Participant) Key() string {
	if p.ID != "" {
		return p.ID
	}
	if p.Email != "" {
		return p.Email
	}
	return p.Name + " " + p.Surname
}

// SplitName splits a display name on whitespace: the first token is the
// given name, the remaining tokens joined by single spaces form the
// surname. A single-token name has an empty surname.
func SplitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// ExtractID returns the part of the email before the "@", or the empty
// string when there is no email.
func ExtractID(email string) string {
	id, _, _ := strings.Cut(email, "@")
	return id
}

// ParseJoinTime parses a join-timestamp cell against the accepted
// patterns. Failure on all of them is a hard error that aborts the file.
func ParseJoinTime(value string) (time.Time, error) {
	for _, layout := range joinTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.Newf(apperrors.KindRowFormat, "invalid join time %q", value)
}

// columns maps header names to cell positions for one session file.
type columns struct {
	name  int
	join  int
	email int
}

// findColumns resolves the mandatory and optional column positions in a
// header row. ok is false when a mandatory column is missing, in which
// case the file yields no participants.
func findColumns(header []string) (columns, bool) {
	cols := columns{name: -1, join: -1, email: -1}
	for i, cell := range header {
		switch cell {
		case columnName:
			if cols.name < 0 {
				cols.name = i
			}
		case columnFirstJoin:
			if cols.join < 0 {
				cols.join = i
			}
		case columnEmail:
			if cols.email < 0 {
				cols.email = i
			}
		}
	}
	return cols, cols.name >= 0 && cols.join >= 0
}

// cell returns the trimmed cell at index, or "" for short rows.
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parseRow maps one record onto a participant event. A nil participant
// with nil error means the row was skipped: empty name, a repeated
// header row, or an empty join-time cell.
func parseRow(row []string, cols columns) (*Participant, error) {
	name := cell(row, cols.name)
	if name == "" || name == columnName {
		return nil, nil
	}

	joinValue := cell(row, cols.join)
	if joinValue == "" {
		return nil, nil
	}

	firstJoin, err := ParseJoinTime(joinValue)
	if err != nil {
		return nil, err
	}

	email := cell(row, cols.email)
	first, surname := SplitName(name)

	return &Participant{
		Name:      first,
		Surname:   surname,
		ID:        ExtractID(email),
		Email:     email,
		FirstJoin: firstJoin,
	}, nil
}

// Dedupe collapses repeated rows for the same identity key, keeping the
// entry with the earliest recorded join time. The input order does not
// affect the result.
func Dedupe(participants []Participant) []Participant {
	byKey := make(map[string]Participant, len(participants))
	order := make([]string, 0, len(participants))

	for _, p := range participants {
		key := p.Key()
		existing, seen := byKey[key]
		if !seen {
			byKey[key] = p
			order = append(order, key)
			continue
		}
		if p.FirstJoin.Before(existing.FirstJoin) {
			byKey[key] = p
		}
	}

	deduped := make([]Participant, 0, len(order))
	for _, key := range order {
		deduped = append(deduped, byKey[key])
	}
	return deduped
}
