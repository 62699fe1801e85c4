// Package cmdline provides error types and recovery modes for script parsing.
package cmdline

import (
	"fmt"

	"github.com/shapestone/shape-cmdline/internal/parser"
)

// BadLineMode specifies how script parsing handles lines that break a limit.
type BadLineMode int

const (
	// BadLineModeError returns an error on bad lines (default).
	BadLineModeError BadLineMode = iota
	// BadLineModeWarn reports a warning but continues parsing.
	BadLineModeWarn
	// BadLineModeSkip silently skips bad lines.
	BadLineModeSkip
)

// String returns the string representation of BadLineMode.
func (m BadLineMode) String() string {
	switch m {
	case BadLineModeError:
		return "error"
	case BadLineModeWarn:
		return "warn"
	case BadLineModeSkip:
		return "skip"
	default:
		return fmt.Sprintf("BadLineMode(%d)", m)
	}
}

// ParseError reports a bad line with its 1-indexed line and byte column.
// Use errors.Is with ErrTooManyArgs or ErrArgTooLarge to tell the cause.
//
// Tokenizing itself never fails: ParseError only comes from the limits in
// ParseOptions.
type ParseError = parser.Error

// Common parsing errors
var (
	// ErrTooManyArgs indicates a line exceeded ParseOptions.MaxArgs.
	ErrTooManyArgs = parser.ErrTooManyArgs

	// ErrArgTooLarge indicates an argument exceeded ParseOptions.MaxArgSize.
	ErrArgTooLarge = parser.ErrArgTooLarge
)

// WarningHandler is a callback function for reporting warnings.
type WarningHandler func(line int, message string)
