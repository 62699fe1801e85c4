package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-cmdline/internal/scan"
)

// NewTokenizer creates a tokenizer for command scripts.
//
// Matchers are tried in order of specificity:
// 1. Newlines (CRLF before LF to match longer sequence first)
// 2. Space runs (whitespace other than LF)
// 3. Arguments (the scan core's token rule)
//
// Every byte is claimed by exactly one matcher, so the tokenizer never
// stalls on malformed input.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),

		SpaceMatcher(),
		ArgMatcher(),
	)
}

// NewTokenizerWithStream creates a tokenizer using a pre-configured stream.
// This is used internally to support streaming from io.Reader.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// isLineSpace reports whether b separates arguments without ending the line.
func isLineSpace(b byte) bool {
	return b != '\n' && scan.IsSpace(b)
}

// SpaceMatcher matches a run of whitespace bytes other than LF.
// A CR directly before LF is left for the newline matcher when it runs first.
func SpaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return spaceMatcherByte(byteStream)
		}
		return spaceMatcherRune(stream)
	}
}

func spaceMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || !isLineSpace(b) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenSpace, []rune(string(value)))
}

func spaceMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r >= 0x80 || !isLineSpace(byte(r)) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenSpace, value)
}

// ArgMatcher matches one argument.
//
// Grammar:
//
//	Arg       = ArgPart { ArgPart } ;
//	ArgPart   = BareByte | QuotedRun ;
//	BareByte  = <any byte except TAB, LF, CR, SPACE, '"'> ;
//	QuotedRun = '"' { <any byte except '"'> } [ '"' ] ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func ArgMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return argMatcherByte(byteStream)
		}
		return argMatcherRune(stream)
	}
}

// argMatcherByte uses ByteStream for optimal performance.
func argMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	startPos := stream.BytePosition()
	st := scan.Bare

	for {
		b, ok := stream.PeekByte()
		if !ok {
			break
		}

		var in bool
		if st, in = st.Step(b); !in {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenArg, []rune(string(value)))
}

// argMatcherRune is the fallback rune-based implementation.
// Multi-byte runes never contain whitespace bytes, so they are always content.
func argMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune
	st := scan.Bare

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}

		if r < 0x80 {
			var in bool
			if st, in = st.Step(byte(r)); !in {
				break
			}
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenArg, value)
}
