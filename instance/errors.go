package instance

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	ErrMalformedInteger ErrorKind = iota
	ErrMalformedIdentifier
	ErrUnterminatedLine
	ErrMissingVehicleSummary
	ErrIncompleteSeparatorBlock
	ErrMissingDataRows
	ErrTrailingContent
	ErrInvalidRowFieldCount
)

var errorKindNames = map[ErrorKind]string{
	ErrMalformedInteger:         "malformed integer",
	ErrMalformedIdentifier:      "malformed identifier",
	ErrUnterminatedLine:         "unterminated line",
	ErrMissingVehicleSummary:    "missing vehicle summary",
	ErrIncompleteSeparatorBlock: "incomplete separator block",
	ErrMissingDataRows:          "missing data rows",
	ErrTrailingContent:          "trailing content",
	ErrInvalidRowFieldCount:     "invalid row field count",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is the error type for all parse failures. Every failure is
// fatal: Parse returns either a complete Instance or a single *ParseError
// identifying the offending line and what was expected there.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }
