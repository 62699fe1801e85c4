// Package scan implements the byte-level scanning loop shared by every token
// view in shape-cmdline.
//
// A token is a maximal run of non-whitespace bytes. A double quote opens a
// quoted run that absorbs every byte, whitespace included, up to and including
// the next double quote or the end of the input. Quotes are ordinary bytes
// otherwise: they are never stripped and there is no escaping.
//
// Scanning never fails. An unterminated quote absorbs the rest of the input.
package scan

// spaceMask selects the whitespace bytes among the control codes 0-31:
// TAB (9), LF (10) and CR (13).
const spaceMask = 0x2600

// spaceTable classifies all 256 byte values.
var spaceTable = func() (t [256]bool) {
	for b := 0; b < 32; b++ {
		t[b] = (1<<b)&spaceMask != 0
	}
	t[' '] = true
	return t
}()

// IsSpace reports whether b separates tokens.
//
// Only TAB, LF, CR and SPACE qualify. VT, FF and the remaining control bytes
// are token content.
func IsSpace(b byte) bool {
	return spaceTable[b]
}

// State is the quote state carried from one byte of a token to the next.
type State uint8

const (
	// Bare means the scan is outside a quoted run.
	Bare State = iota
	// Quoted means the scan is inside a quoted run.
	Quoted
)

// Step feeds c to a token in state st. It reports whether c belongs to the
// token and the state for the following byte.
func (st State) Step(c byte) (State, bool) {
	if st == Quoted {
		if c == '"' {
			return Bare, true
		}
		return Quoted, true
	}
	switch {
	case IsSpace(c):
		return Bare, false
	case c == '"':
		return Quoted, true
	default:
		return Bare, true
	}
}

// SkipSpace returns the offset of the first non-whitespace byte at or after i,
// or len(s).
func SkipSpace(s string, i int) int {
	for i < len(s) && IsSpace(s[i]) {
		i++
	}
	return i
}

// Next locates the first token at or after offset i.
//
// On success it returns the token span [start, end) with start < end; the
// caller's cursor moves to end. When only whitespace remains ok is false and
// start == end == len(s), so the cursor moves to the end of the input and
// further calls stay exhausted. Offsets outside [0, len(s)] are clamped.
func Next(s string, i int) (start, end int, ok bool) {
	if i < 0 {
		i = 0
	}
	i = SkipSpace(s, i)
	if i >= len(s) {
		return len(s), len(s), false
	}
	return i, End(s, i), true
}

// End returns the end offset of the token that starts at offset start.
// start must index a non-whitespace byte.
func End(s string, start int) int {
	i := start
	st := Bare
	for i < len(s) {
		var in bool
		if st, in = st.Step(s[i]); !in {
			break
		}
		i++
	}
	return i
}
