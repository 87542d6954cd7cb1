package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSymbol indicates an input byte has no cell mapping.
	ErrUnknownSymbol = errors.New("core: unknown cell symbol")
	// ErrRaggedRows indicates input rows of differing lengths.
	ErrRaggedRows = errors.New("core: all rows must have the same length")
)

// SymbolError reports the offending byte and where it was found.
type SymbolError struct {
	Byte     byte
	Row, Col int
	Err      error
}

func (e *SymbolError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, ErrUnknownSymbol) {
		return fmt.Sprintf("core: invalid symbol %q at row %d col %d: %v", e.Byte, e.Row, e.Col, e.Err)
	}
	return fmt.Sprintf("core: unknown cell symbol %q at row %d col %d", e.Byte, e.Row, e.Col)
}

// Unwrap exposes ErrUnknownSymbol and the decoder's own error.
func (e *SymbolError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnknownSymbol}
	}
	return []error{ErrUnknownSymbol, e.Err}
}

// RowLengthError reports a row whose length differs from the first row.
type RowLengthError struct {
	Row       int
	Got, Want int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("core: row %d has %d cells, want %d", e.Row, e.Got, e.Want)
}

// Unwrap returns ErrRaggedRows.
func (e *RowLengthError) Unwrap() error { return ErrRaggedRows }
