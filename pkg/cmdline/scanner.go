package cmdline

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Scanner provides a streaming interface for reading commands one at a time
// from a script.
//
// Example usage:
//
//	file, _ := os.Open("deploy.cmds")
//	defer file.Close()
//
//	scanner := cmdline.NewScanner(file).SetComment('#')
//	for scanner.Scan() {
//	    args := scanner.Args()
//	    fmt.Println(args[0], len(args)-1)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	reader io.Reader
	opts   ParseOptions
	lines  []ast.SchemaNode
	index  int
	err    error
	parsed bool
}

// NewScanner creates a new Scanner that reads a script from the given io.Reader.
// By default no comment byte is recognized.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		reader: reader,
		opts:   DefaultParseOptions(),
		index:  -1,
	}
}

// SetComment sets the comment byte. Commands whose first argument starts
// with it are skipped. Returns the Scanner for method chaining.
func (s *Scanner) SetComment(comment byte) *Scanner {
	s.opts.Comment = comment
	return s
}

// SetOptions replaces all parse options. Returns the Scanner for method chaining.
func (s *Scanner) SetOptions(opts ParseOptions) *Scanner {
	s.opts = opts
	return s
}

// Scan advances the scanner to the next command.
// It returns false when there are no more commands or an error occurs.
// After Scan returns false, the Err method will return any error that occurred.
func (s *Scanner) Scan() bool {
	if !s.parsed {
		s.parsed = true
		if err := s.parse(); err != nil {
			s.err = err
			return false
		}
	}

	if s.index >= len(s.lines) {
		return false
	}
	s.index++
	return s.index < len(s.lines)
}

// Args returns the arguments of the current command, quotes included.
// This should only be called after Scan() returns true.
func (s *Scanner) Args() []string {
	if s.index < 0 || s.index >= len(s.lines) {
		return []string{}
	}

	line, ok := s.lines[s.index].(*ast.ArrayDataNode)
	if !ok {
		return []string{}
	}

	elems := line.Elements()
	args := make([]string, 0, len(elems))
	for _, elem := range elems {
		if lit, ok := elem.(*ast.LiteralNode); ok {
			if v, ok := lit.Value().(string); ok {
				args = append(args, v)
			}
		}
	}
	return args
}

// Index returns the 1-indexed number of the current command, or 0 before the
// first call to Scan.
func (s *Scanner) Index() int {
	if s.index < 0 {
		return 0
	}
	if s.index >= len(s.lines) {
		return len(s.lines)
	}
	return s.index + 1
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil if no error occurred or at EOF.
func (s *Scanner) Err() error {
	return s.err
}

// parse reads and parses the whole script.
func (s *Scanner) parse() error {
	node, err := ParseReaderWithOptions(s.reader, s.opts)
	if err != nil {
		return err
	}

	if arr, ok := node.(*ast.ArrayDataNode); ok {
		s.lines = arr.Elements()
	}
	return nil
}
