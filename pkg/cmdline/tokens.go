package cmdline

import "iter"

// Tokens tokenizes a command line string producing substrings.
//
// Each token is a slice of the input, so no text is copied. Quotes are kept
// verbatim: `say "hello world"` yields `say` and `"hello world"`.
//
// Example:
//
//	toks := cmdline.NewTokens("command -o --long-arg value")
//	for tok := range toks.All() {
//	    fmt.Println(tok)
//	}
type Tokens struct {
	ranges TokenRanges
}

// NewTokens creates a Tokens over s.
func NewTokens(s string) *Tokens {
	return &Tokens{ranges: TokenRanges{s: s}}
}

// Next returns the next token.
// It returns false once the input is exhausted, and keeps returning false
// on every later call.
func (t *Tokens) Next() (string, bool) {
	r, ok := t.ranges.Next()
	if !ok {
		return "", false
	}
	return t.ranges.s[r.Start:r.End], true
}

// Tail returns the remainder of the command string that has not been scanned.
func (t *Tokens) Tail() string {
	return t.ranges.Tail()
}

// All returns an iterator over the remaining tokens.
func (t *Tokens) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
