// Package cmdline splits command-line-style strings into tokens.
//
// Tokens are separated by runs of TAB, LF, CR or SPACE. A double quote opens
// a quoted run that keeps whitespace inside the token until the next double
// quote or the end of the input. Quotes are kept verbatim and are never
// escaped, and a token may hold several quoted runs:
//
//	a"b c"d"e f"   is one token
//	"a b           is one token (an unterminated quote absorbs the rest)
//
// Tokenizing never fails. There is no option or flag syntax: what a token
// means is up to the caller, typically by switching on a State while it
// consumes tokens.
//
// # Token views
//
// Two views share one scanning routine:
//
//   - Tokens yields each token as a substring of the input.
//   - TokenRanges yields each token's byte Range, for callers that re-slice,
//     highlight or rewrite the input in place.
//
// Neither view copies the input.
//
// # Thread Safety
//
// A Tokens or TokenRanges value owns its cursor and must not be shared
// between goroutines without synchronization. The input is never modified,
// so any number of views may scan the same string concurrently.
//
//	// Safe: independent views
//	go func() { cmdline.Split(line) }()
//	go func() { cmdline.SplitRanges(line) }()
//
// # Scripts
//
// Parse and ParseReader read multi-line command scripts into Shape's AST.
// Each line outside a quoted run is one command; a quoted run may span lines.
package cmdline

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-cmdline/internal/scan"
)

// Split returns all tokens of s.
//
// Example:
//
//	cmdline.Split(`run "my file.txt" -v`) // []string{"run", `"my file.txt"`, "-v"}
func Split(s string) []string {
	out := make([]string, 0, 8)
	for tok := range NewTokens(s).All() {
		out = append(out, tok)
	}
	return out
}

// SplitRanges returns the byte ranges of all tokens of s.
func SplitRanges(s string) []Range {
	out := make([]Range, 0, 8)
	for r := range NewTokenRanges(s).All() {
		out = append(out, r)
	}
	return out
}

// Count returns the number of tokens in s without collecting them.
func Count(s string) int {
	n := 0
	for i := 0; ; n++ {
		_, end, ok := scan.Next(s, i)
		if !ok {
			return n
		}
		i = end
	}
}

// Parse parses a command script into an AST from a string.
//
// Returns an ast.ArrayDataNode representing the script:
//   - *ast.ArrayDataNode for the script (array of lines)
//   - Each line is an *ast.ArrayDataNode of arguments
//   - Each argument is an *ast.LiteralNode holding the token text
//
// Lines without arguments are dropped. With default options Parse never
// returns an error.
//
// Example:
//
//	node, err := cmdline.Parse("get foo\nset foo \"a b\"")
//	lines := node.(*ast.ArrayDataNode).Elements()
//	// lines[1] holds set, foo and "a b"
func Parse(input string) (ast.SchemaNode, error) {
	return ParseWithOptions(input, DefaultParseOptions())
}

// ParseReader parses a command script into an AST from an io.Reader.
//
// The reader is consumed through Shape's buffered stream rather than read
// into a string first.
func ParseReader(reader io.Reader) (ast.SchemaNode, error) {
	return ParseReaderWithOptions(reader, DefaultParseOptions())
}

// Format returns the format identifier for this parser.
func Format() string {
	return "CMDLINE"
}
