// Package cmdline provides configurable options for script parsing.
package cmdline

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-cmdline/internal/parser"
)

// ParseOptions configures script parsing.
type ParseOptions struct {
	// Comment, if not 0, is the comment byte. Lines whose first argument
	// starts with it are ignored.
	// Default: 0 (disabled)
	Comment byte

	// MaxArgs is the maximum number of arguments on one line.
	// Default: 0 (no limit)
	MaxArgs int

	// MaxArgSize is the maximum size of one argument in bytes, quotes included.
	// Default: 0 (no limit)
	MaxArgSize int

	// OnBadLine specifies how to handle lines that break a limit.
	// Default: BadLineModeError
	OnBadLine BadLineMode

	// WarningCallback is invoked for bad lines when OnBadLine is BadLineModeWarn.
	// If nil, warnings are logged through zerolog.
	WarningCallback WarningHandler
}

// DefaultParseOptions returns the default parse configuration.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Comment:         0,
		MaxArgs:         0,
		MaxArgSize:      0,
		OnBadLine:       BadLineModeError,
		WarningCallback: nil,
	}
}

func (o ParseOptions) parserOptions() parser.Options {
	return parser.Options{
		Comment:         o.Comment,
		MaxArgs:         o.MaxArgs,
		MaxArgSize:      o.MaxArgSize,
		OnBadLine:       parser.BadLineMode(o.OnBadLine),
		WarningCallback: o.WarningCallback,
	}
}

// ParseWithOptions parses a command script into an AST with custom options.
//
// Example:
//
//	opts := cmdline.DefaultParseOptions()
//	opts.Comment = '#'
//	opts.MaxArgs = 16
//	node, err := cmdline.ParseWithOptions(script, opts)
func ParseWithOptions(input string, opts ParseOptions) (ast.SchemaNode, error) {
	p := parser.NewParserWithOptions(input, opts.parserOptions())
	return p.Parse()
}

// ParseReaderWithOptions parses a command script into an AST from an io.Reader with custom options.
//
// Example:
//
//	opts := cmdline.DefaultParseOptions()
//	opts.OnBadLine = cmdline.BadLineModeSkip
//	node, err := cmdline.ParseReaderWithOptions(file, opts)
func ParseReaderWithOptions(reader io.Reader, opts ParseOptions) (ast.SchemaNode, error) {
	stream := tokenizer.NewStreamFromReader(reader)
	p := parser.NewParserFromStreamWithOptions(stream, opts.parserOptions())
	node, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("cmdline: parse reader: %w", err)
	}
	return node, nil
}
