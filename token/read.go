package token

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/readahead"
)

// ErrRead is returned when input cannot be opened or read.
var ErrRead = errors.New("read input")

// maxLineBytes bounds a single scanned line.
const maxLineBytes = 1 << 20

// ReadLines reads the file at path into an ordered slice of lines.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer file.Close()

	return ScanLines(file)
}

// ScanLines reads r to EOF and returns its lines in order.
// Line terminators, including a trailing carriage return, are removed.
func ScanLines(r io.Reader) ([]string, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	scanner := bufio.NewScanner(ra)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	var lines []string

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return lines, nil
}
