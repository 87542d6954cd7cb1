package core

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Decoder maps a single input byte to a cell.
type Decoder[T Cell] func(b byte) (T, error)

// ParseOptions tunes text grid parsing.
type ParseOptions struct {
	// AllowRagged accepts rows of differing length. Rows are flattened and
	// the width is taken from the first row; the final partial row is padded
	// with the background value.
	AllowRagged bool
}

// Parse builds a grid from line-delimited text.
func Parse[T Cell](s string, decode Decoder[T]) (*Grid[T], error) {
	return FromReaderWith(strings.NewReader(s), decode, ParseOptions{})
}

// FromReader builds a grid from line-delimited bytes read from r.
func FromReader[T Cell](r io.Reader, decode Decoder[T]) (*Grid[T], error) {
	return FromReaderWith(r, decode, ParseOptions{})
}

// FromReaderWith builds a grid from r. Every byte is decoded exactly once and
// the first failure aborts the whole parse. Empty lines at the end of the
// input are ignored.
func FromReaderWith[T Cell](r io.Reader, decode Decoder[T], opts ParseOptions) (*Grid[T], error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return &Grid[T]{cells: []T{}}, nil
	}

	w := len(lines[0])
	cells := make([]T, 0, w*len(lines))
	for row, line := range lines {
		// An empty first row leaves no width to flatten into, ragged or not.
		if len(line) != w && (!opts.AllowRagged || w == 0) {
			return nil, &RowLengthError{Row: row, Got: len(line), Want: w}
		}
		for col, b := range line {
			c, derr := decode(b)
			if derr != nil {
				return nil, &SymbolError{Byte: b, Row: row, Col: col, Err: derr}
			}
			cells = append(cells, c)
		}
	}

	h := len(lines)
	if opts.AllowRagged {
		h = (len(cells) + w - 1) / w
		var zero T
		for len(cells) < w*h {
			cells = append(cells, zero)
		}
	}
	return &Grid[T]{w: w, h: h, cells: cells}, nil
}

// readLines splits r on '\n' and drops a trailing '\r' from every line.
func readLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("core: read grid: %w", err)
		}
		eof := err != nil
		line = bytes.TrimSuffix(line, []byte{'\n'})
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if eof && len(line) == 0 {
			return lines, nil
		}
		lines = append(lines, line)
		if eof {
			return lines, nil
		}
	}
}
