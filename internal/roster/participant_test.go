package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rollcall/internal/errors"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		input   string
		first   string
		surname string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Ada King Lovelace", "Ada", "King Lovelace"},
		{"Madonna", "Madonna", ""},
		{"  Ada   Lovelace  ", "Ada", "Lovelace"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			first, surname := SplitName(tt.input)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.surname, surname)
		})
	}
}

func TestExtractID(t *testing.T) {
	assert.Equal(t, "ada.lovelace", ExtractID("ada.lovelace@university.edu"))
	assert.Equal(t, "", ExtractID(""))
	assert.Equal(t, "no-at-sign", ExtractID("no-at-sign"))
}

func TestParticipant_Key(t *testing.T) {
	tests := []struct {
		name     string
		p        Participant
		expected string
	}{
		{
			name:     "id token preferred",
			p:        Participant{Name: "Ada", Surname: "Lovelace", ID: "ada", Email: "ada@u.edu"},
			expected: "ada",
		},
		{
			name:     "falls back to email",
			p:        Participant{Name: "Ada", Surname: "Lovelace", Email: "broken-address"},
			expected: "broken-address",
		},
		{
			name:     "falls back to full name",
			p:        Participant{Name: "Ada", Surname: "Lovelace"},
			expected: "Ada Lovelace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.Key())
		})
	}
}

func TestParseJoinTime(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"9/1/23, 1:30:05 PM", time.Date(2023, 9, 1, 13, 30, 5, 0, time.UTC)},
		{"9/1/2023, 1:30:05 PM", time.Date(2023, 9, 1, 13, 30, 5, 0, time.UTC)},
		{"12/31/23, 11:59:59 PM", time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)},
		{"1/2/24, 12:00:00 AM", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseJoinTime(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(parsed))
		})
	}
}

func TestParseJoinTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2023-09-01 13:30:05", "9/1/23 1:30:05 PM"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseJoinTime(input)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindRowFormat))
		})
	}
}

func joinedAt(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseJoinTime(value)
	require.NoError(t, err)
	return parsed
}

func TestDedupe_KeepsEarliestJoin(t *testing.T) {
	early := Participant{Name: "Ada", Surname: "Lovelace", ID: "ada", Email: "ada@u.edu",
		FirstJoin: joinedAt(t, "9/1/23, 1:25:00 PM")}
	late := Participant{Name: "Ada", Surname: "Lovelace", ID: "ada", Email: "ada@u.edu",
		FirstJoin: joinedAt(t, "9/1/23, 1:40:00 PM")}
	other := Participant{Name: "Grace", Surname: "Hopper", ID: "grace", Email: "grace@u.edu",
		FirstJoin: joinedAt(t, "9/1/23, 1:31:00 PM")}

	// The result does not depend on row order.
	for name, input := range map[string][]Participant{
		"early first": {early, late, other},
		"late first":  {late, early, other},
		"interleaved": {late, other, early},
	} {
		t.Run(name, func(t *testing.T) {
			deduped := Dedupe(input)
			require.Len(t, deduped, 2)

			byKey := map[string]Participant{}
			for _, p := range deduped {
				byKey[p.Key()] = p
			}
			assert.True(t, early.FirstJoin.Equal(byKey["ada"].FirstJoin))
			assert.True(t, other.FirstJoin.Equal(byKey["grace"].FirstJoin))
		})
	}
}

func TestDedupe_DistinctKeysUntouched(t *testing.T) {
	a := Participant{Name: "Ada", Surname: "Lovelace", FirstJoin: joinedAt(t, "9/1/23, 1:25:00 PM")}
	b := Participant{Name: "Ada", Surname: "Byron", FirstJoin: joinedAt(t, "9/1/23, 1:25:00 PM")}

	assert.Len(t, Dedupe([]Participant{a, b}), 2)
}
