package cmdline

import (
	"fmt"
	"iter"

	"github.com/shapestone/shape-cmdline/internal/scan"
)

// Range is a half-open byte interval [Start, End) locating a token within
// the string it was scanned from.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// In returns the text the range covers in s.
// The range is clipped to s, so a range from another string never panics.
func (r Range) In(s string) string {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}

// String returns the range in interval notation, e.g. "[2,7)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// TokenRanges tokenizes a command line string producing byte ranges.
//
// It borrows the string and never copies it. Callers can re-slice, highlight
// or rewrite the original using the returned ranges. A TokenRanges is not safe
// for concurrent use; independent instances over the same string are.
//
// Example:
//
//	tr := cmdline.NewTokenRanges("  hello world")
//	for {
//	    r, ok := tr.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(r, r.In(tr.Source())) // [2,7) hello, then [8,13) world
//	}
type TokenRanges struct {
	s string
	i int
}

// NewTokenRanges creates a TokenRanges that starts scanning at the beginning of s.
func NewTokenRanges(s string) *TokenRanges {
	return &TokenRanges{s: s}
}

// NewTokenRangesAt creates a TokenRanges that resumes scanning s at byte offset.
// The offset is clamped to [0, len(s)]. Returned ranges are still relative to
// the start of s.
func NewTokenRangesAt(s string, offset int) *TokenRanges {
	switch {
	case offset < 0:
		offset = 0
	case offset > len(s):
		offset = len(s)
	}
	return &TokenRanges{s: s, i: offset}
}

// Next returns the range of the next token.
// It returns false once the input is exhausted, and keeps returning false
// on every later call.
func (t *TokenRanges) Next() (Range, bool) {
	start, end, ok := scan.Next(t.s, t.i)
	t.i = end
	if !ok {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Source returns the original command string.
func (t *TokenRanges) Source() string {
	return t.s
}

// Tail returns the remainder of the command string that has not been scanned.
// Trailing whitespace is consumed by the call that reports exhaustion.
func (t *TokenRanges) Tail() string {
	return t.s[t.i:]
}

// Offset returns the current scan position in bytes.
func (t *TokenRanges) Offset() int {
	return t.i
}

// All returns an iterator over the remaining token ranges.
// Breaking out of the loop leaves the TokenRanges positioned after the last
// range yielded.
func (t *TokenRanges) All() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for {
			r, ok := t.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}
