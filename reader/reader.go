// Package reader turns text input into rows of integers.
//
// Tokens are split on runs of whitespace. Tokens that do not parse as the
// target integer type are dropped without error, so "3 foo 4" reads as [3 4].
// A line without any valid token still yields an empty row.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/botirk38/aoc2024/types"
	"golang.org/x/exp/constraints"
)

// MaxLineSize is the longest line ParseRows accepts.
const MaxLineSize = 1 << 20

// ReadRows opens the file at path and parses every line into a row.
// The file is closed before ReadRows returns.
func ReadRows[T constraints.Integer](path string) ([]types.Row[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	defer f.Close()

	rows, err := ParseRows[T](f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ParseRows parses every line of r into a row, in input order.
// Any read failure aborts the whole parse.
func ParseRows[T constraints.Integer](r io.Reader) ([]types.Row[T], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)

	var rows []types.Row[T]
	for scanner.Scan() {
		rows = append(rows, ParseLine[T](scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	return rows, nil
}

// ParseLine parses the whitespace separated integers in line.
func ParseLine[T constraints.Integer](line string) types.Row[T] {
	fields := strings.Fields(line)
	row := make(types.Row[T], 0, len(fields))
	for _, field := range fields {
		if v, ok := parseToken[T](field); ok {
			row = append(row, v)
		}
	}
	return row
}

// ReadText returns the whole contents of the file at path.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", path, ErrReadFailed, err)
	}
	return string(data), nil
}

// parseToken parses s with the width and signedness of T.
func parseToken[T constraints.Integer](s string) (T, bool) {
	var zero T
	bitSize := reflect.TypeFor[T]().Bits()

	if ^zero < 0 {
		n, err := strconv.ParseInt(s, 10, bitSize)
		if err != nil {
			return zero, false
		}
		return T(n), true
	}

	n, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return zero, false
	}
	return T(n), true
}
