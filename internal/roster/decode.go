// Package roster turns attendance export files into deduplicated
// participant events. CSV and spreadsheet sources funnel into one shared
// row-parsing path.
package roster

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "rollcall/internal/errors"
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// DecodeText decodes raw tabular file bytes into text. The encoding is
// chosen by byte-order-mark sniffing (UTF-16 LE/BE, UTF-8 with BOM);
// without a BOM the bytes are taken as UTF-8 when valid, with
// Windows-1252 as the legacy fallback.
func DecodeText(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		return decodeUTF16(raw, unicode.LittleEndian)
	case bytes.HasPrefix(raw, bomUTF16BE):
		return decodeUTF16(raw, unicode.BigEndian)
	case bytes.HasPrefix(raw, bomUTF8):
		return string(bytes.TrimPrefix(raw, bomUTF8)), nil
	case utf8.Valid(raw):
		return string(raw), nil
	default:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", apperrors.NewDecodeError("file bytes cannot be decoded", err)
		}
		return string(decoded), nil
	}
}

func decodeUTF16(raw []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", apperrors.NewDecodeError("file bytes cannot be decoded", err)
	}
	return string(decoded), nil
}

// DetectDelimiter inspects the first non-blank line of the decoded text
// and picks the field delimiter by frequency: tab wins ties, semicolon
// must strictly beat comma, comma is the default.
func DetectDelimiter(text string) rune {
	var line string
	for _, candidate := range strings.Split(text, "\n") {
		if strings.TrimSpace(candidate) != "" {
			line = candidate
			break
		}
	}

	comma := strings.Count(line, ",")
	tab := strings.Count(line, "\t")
	semicolon := strings.Count(line, ";")

	switch {
	case tab >= comma && tab >= semicolon:
		return '\t'
	case semicolon > comma:
		return ';'
	default:
		return ','
	}
}
