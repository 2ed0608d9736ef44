package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is returned by [Before] when the key is absent from the line.
var ErrNotFound = errors.New("key not found")

// ErrNotNumber is returned by [Uints] for a field that is not a non-negative
// integer.
var ErrNotNumber = errors.New("not a non-negative integer")

// Token is a label extracted from a line of text.
type Token struct {
	// Value is the text preceding the key.
	Value string
	// Remainder is the text following the key.
	Remainder string
}

// Before splits line on sep and returns the text preceding the first field
// equal to key. A field matches when it equals key, optionally followed by a
// single colon. If the preceding text is empty, def is returned as the value.
func Before(line, key, def, sep string) (Token, error) {
	if sep == "" {
		sep = " "
	}

	fields := strings.Split(line, sep)

	for i, field := range fields {
		if field != key && field != key+":" {
			continue
		}

		tok := Token{
			Value:     strings.Join(fields[:i], sep),
			Remainder: strings.Join(fields[i+1:], sep),
		}

		if strings.TrimSpace(tok.Value) == "" {
			tok.Value = def
		}

		return tok, nil
	}

	return Token{}, fmt.Errorf("%w: %q in %q", ErrNotFound, key, line)
}

// Chunks splits lines into blocks separated by blank lines.
// Leading, trailing, and repeated blank lines never produce empty blocks.
func Chunks(lines []string) [][]string {
	var (
		result [][]string
		chunk  []string
	)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(chunk) > 0 {
				result = append(result, chunk)
				chunk = nil
			}

			continue
		}

		chunk = append(chunk, line)
	}

	if len(chunk) > 0 {
		result = append(result, chunk)
	}

	return result
}

// Uints parses the whitespace-separated fields of s as base-10 unsigned
// integers.
func Uints(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	values := make([]uint64, 0, len(fields))

	for _, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotNumber, field)
		}

		values = append(values, v)
	}

	return values, nil
}
