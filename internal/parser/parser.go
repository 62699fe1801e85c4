// Package parser implements LL(1) recursive descent parsing for command scripts.
// A script is a sequence of command lines; each production rule below
// corresponds to a parse function.
//
// Grammar:
//
//	Script = { Line } ;
//	Line   = [ Space ] [ Arg { Space Arg } [ Space ] ] ( Newline | EOF ) ;
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-cmdline/internal/tokenizer"
)

// BadLineMode specifies how to handle lines that break a configured limit.
type BadLineMode int

const (
	// BadLineModeError returns an error on bad lines (default).
	BadLineModeError BadLineMode = iota
	// BadLineModeWarn reports a warning but continues parsing.
	BadLineModeWarn
	// BadLineModeSkip silently skips bad lines.
	BadLineModeSkip
)

var (
	// ErrTooManyArgs indicates a line exceeded MaxArgs.
	ErrTooManyArgs = errors.New("too many arguments")

	// ErrArgTooLarge indicates an argument exceeded MaxArgSize.
	ErrArgTooLarge = errors.New("argument exceeds maximum size")
)

// Error reports a bad line with its position.
type Error struct {
	// Line is the line where the offending element starts (1-indexed).
	Line int
	// Column is the byte column where the offending element starts (1-indexed).
	Column int
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures the parser behavior.
type Options struct {
	// Comment is the comment byte. Lines whose first argument starts with it are skipped. Default: 0 (disabled)
	Comment byte
	// MaxArgs is the maximum number of arguments on one line. 0 means no limit.
	MaxArgs int
	// MaxArgSize is the maximum size of one argument in bytes. 0 means no limit.
	MaxArgSize int
	// OnBadLine specifies how to handle bad lines. Default: BadLineModeError
	OnBadLine BadLineMode
	// WarningCallback is invoked for warnings when OnBadLine is BadLineModeWarn.
	// When nil, warnings go to the zerolog logger.
	WarningCallback func(line int, message string)
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Comment:    0,
		MaxArgs:    0,
		MaxArgSize: 0,
		OnBadLine:  BadLineModeError,
	}
}

// Parser implements LL(1) recursive descent parsing for command scripts.
// It maintains a single token lookahead for predictive parsing.
type Parser struct {
	tokenizer     *shapetokenizer.Tokenizer
	current       *shapetokenizer.Token
	hasToken      bool
	opts          Options
	currentLine   int
	currentColumn int
}

// NewParser creates a new parser for the given input string.
// For parsing from io.Reader, use NewParserFromStream instead.
func NewParser(input string) *Parser {
	return NewParserWithOptions(input, DefaultOptions())
}

// NewParserWithOptions creates a new parser with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	return newParserWithStreamAndOptions(shapetokenizer.NewStream(input), opts)
}

// NewParserFromStream creates a new parser using a pre-configured stream.
// This allows parsing from io.Reader using tokenizer.NewStreamFromReader.
func NewParserFromStream(stream shapetokenizer.Stream) *Parser {
	return NewParserFromStreamWithOptions(stream, DefaultOptions())
}

// NewParserFromStreamWithOptions creates a new parser from a stream with custom options.
func NewParserFromStreamWithOptions(stream shapetokenizer.Stream, opts Options) *Parser {
	return newParserWithStreamAndOptions(stream, opts)
}

func newParserWithStreamAndOptions(stream shapetokenizer.Stream, opts Options) *Parser {
	tok := tokenizer.NewTokenizerWithStream(stream)

	p := &Parser{
		tokenizer:     &tok,
		opts:          opts,
		currentLine:   1,
		currentColumn: 1,
	}
	p.advance() // Load first token
	return p
}

// Parse parses the input and returns an AST representing the script.
//
// Grammar:
//
//	Script = { Line } ;
//
// Returns *ast.ArrayDataNode - an array of lines, where each line is an
// ArrayDataNode of arguments. Each argument is a LiteralNode holding the
// argument text with its quotes. Lines without arguments are dropped.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	lines := make([]ast.SchemaNode, 0, 16)

	for p.hasToken {
		startLine := p.currentLine

		line, err := p.parseLine()
		if line == nil {
			return nil, err
		}
		if line.Len() == 0 || p.isCommentLine(line) {
			continue
		}
		if err == nil && p.opts.MaxArgs > 0 && line.Len() > p.opts.MaxArgs {
			err = &Error{Line: startLine, Column: 1, Err: fmt.Errorf("%w (%d > %d)", ErrTooManyArgs, line.Len(), p.opts.MaxArgs)}
		}
		if err != nil {
			if err := p.handleBadLine(startLine, err); err != nil {
				return nil, err
			}
			continue
		}

		lines = append(lines, line)
	}

	log.Debug().
		Int("lines", len(lines)).
		Msg("cmdline: parsed script")

	return ast.NewArrayDataNode(lines, ast.ZeroPosition()), nil
}

// handleBadLine handles a bad line based on OnBadLine mode.
// Returns nil if parsing should continue, or the error if it should stop.
func (p *Parser) handleBadLine(line int, err error) error {
	switch p.opts.OnBadLine {
	case BadLineModeSkip:
		return nil
	case BadLineModeWarn:
		if p.opts.WarningCallback != nil {
			p.opts.WarningCallback(line, err.Error())
			return nil
		}
		log.Warn().
			Int("line", line).
			Err(err).
			Msg("cmdline: skipping bad line")
		return nil
	default:
		return err
	}
}

// parseLine parses a single command line.
//
// Grammar:
//
//	Line = [ Space ] [ Arg { Space Arg } [ Space ] ] ( Newline | EOF ) ;
//
// The whole line is always consumed, even when an argument breaks a limit,
// so that parsing can resume on the next line.
func (p *Parser) parseLine() (*ast.ArrayDataNode, error) {
	startPos := p.position()
	args := make([]ast.SchemaNode, 0, 8)
	var lineErr error

	for p.hasToken {
		token := p.peek()

		switch token.Kind() {
		case tokenizer.TokenNewline:
			p.advance()
			return ast.NewArrayDataNode(args, startPos), lineErr
		case tokenizer.TokenSpace:
			p.advance()
		case tokenizer.TokenArg:
			arg, err := p.parseArg()
			if err != nil && lineErr == nil {
				lineErr = err
			}
			args = append(args, arg)
		default:
			return nil, fmt.Errorf("unexpected token %s at %s", token.Kind(), p.positionStr())
		}
	}

	// EOF is also a valid line terminator
	return ast.NewArrayDataNode(args, startPos), lineErr
}

// parseArg parses one argument.
//
// Grammar:
//
//	Arg = ArgPart { ArgPart } ;
//
// Returns *ast.LiteralNode with the verbatim argument text.
func (p *Parser) parseArg() (*ast.LiteralNode, error) {
	startPos := p.position()
	line, column := p.currentLine, p.currentColumn
	value := p.peek().ValueString()
	p.advance()

	node := ast.NewLiteralNode(value, startPos)
	if p.opts.MaxArgSize > 0 && len(value) > p.opts.MaxArgSize {
		return node, &Error{
			Line:   line,
			Column: column,
			Err:    fmt.Errorf("%w (%d > %d)", ErrArgTooLarge, len(value), p.opts.MaxArgSize),
		}
	}
	return node, nil
}

// Helper methods

// peek returns current token without advancing.
func (p *Parser) peek() *shapetokenizer.Token {
	return p.current
}

// advance moves to next token, keeping the line and column counters in step.
func (p *Parser) advance() {
	if p.current != nil {
		p.track(p.current.ValueString())
	}

	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
	} else {
		p.hasToken = false
		p.current = nil
	}
}

// track moves the line and column counters past consumed text.
func (p *Parser) track(consumed string) {
	n := strings.Count(consumed, "\n")
	if n == 0 {
		p.currentColumn += len(consumed)
		return
	}
	p.currentLine += n
	p.currentColumn = len(consumed) - strings.LastIndexByte(consumed, '\n')
}

// position returns current position for AST nodes.
func (p *Parser) position() ast.Position {
	if p.hasToken && p.current != nil {
		return ast.NewPosition(
			p.current.Offset(),
			p.current.Row(),
			p.current.Column(),
		)
	}
	return ast.ZeroPosition()
}

// positionStr returns current position as a string for error messages.
func (p *Parser) positionStr() string {
	return p.position().String()
}

// isCommentLine checks if the line's first argument starts with the comment byte.
func (p *Parser) isCommentLine(line *ast.ArrayDataNode) bool {
	if p.opts.Comment == 0 {
		return false
	}
	first, ok := line.Elements()[0].(*ast.LiteralNode)
	if !ok {
		return false
	}
	value, ok := first.Value().(string)
	return ok && len(value) > 0 && value[0] == p.opts.Comment
}
