package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// Encoding is a candidate text encoding for a statement export.
type Encoding string

const (
	EncodingUTF8     Encoding = "utf-8"
	EncodingShiftJIS Encoding = "shift_jis"
)

// DecodingExhaustedError reports that none of the candidate encodings could
// decode a statement file.
type DecodingExhaustedError struct {
	Path      string
	Encodings []Encoding
}

func (e *DecodingExhaustedError) Error() string {
	names := make([]string, len(e.Encodings))
	for i, enc := range e.Encodings {
		names[i] = string(enc)
	}
	return fmt.Sprintf("unable to read file %s with encodings: %s", e.Path, strings.Join(names, ", "))
}

// decode converts raw file bytes to a UTF-8 string, failing on any byte
// sequence that is malformed under the encoding.
func (e Encoding) decode(data []byte) (string, error) {
	switch e {
	case EncodingUTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("invalid UTF-8 byte sequence")
		}
		return string(data), nil
	case EncodingShiftJIS:
		decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		// The decoder substitutes U+FFFD for malformed sequences instead of
		// failing, so its presence means the bytes were not Shift_JIS.
		if bytes.ContainsRune(decoded, utf8.RuneError) {
			return "", fmt.Errorf("invalid Shift_JIS byte sequence")
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("unknown encoding %q", e)
	}
}

// readRows reads a statement CSV trying each candidate encoding in order and
// returns the data rows of the first successful decode. The header row is
// discarded, and a trailing sentinel row (empty first field) is dropped:
// some exports emit a blank line before EOF.
func readRows(path string, encodings []Encoding) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading statement file: %w", err)
	}

	for _, enc := range encodings {
		text, err := enc.decode(data)
		if err != nil {
			continue
		}

		reader := csv.NewReader(strings.NewReader(text))
		// Field counts vary by institution and are checked by the row
		// mappers; quoting in bank exports is not always strict.
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parsing statement CSV %s: %w", path, err)
		}
		if len(rows) > 0 {
			rows = rows[1:] // header
		}
		if len(rows) > 0 {
			if last := rows[len(rows)-1]; len(last) > 0 && last[0] == "" {
				rows = rows[:len(rows)-1]
			}
		}
		return rows, nil
	}

	return nil, &DecodingExhaustedError{Path: path, Encodings: encodings}
}
