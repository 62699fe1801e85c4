// Package tokenizer provides command-line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for command scripts.
//
// Note: Arg tokens keep their quote bytes verbatim. A quoted run may span
// newlines, so a Newline token only ever appears outside quotes.
const (
	// Structural tokens
	TokenNewline = "Newline" // \n or \r\n (line terminator)
	TokenSpace   = "Space"   // run of TAB, CR or SPACE

	// Content token
	TokenArg = "Arg" // one argument, quotes included

	// Special token
	TokenEOF = "EOF" // End of file
)
