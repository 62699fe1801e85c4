package cmdline_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shapestone/shape-cmdline/pkg/cmdline"
)

// TestTokens_Simple mirrors the basic text and range walk side by side.
func TestTokens_Simple(t *testing.T) {
	tokens := cmdline.NewTokens("hello world  ")
	ranges := cmdline.NewTokenRanges("  hello world")

	steps := []struct {
		text string
		rng  cmdline.Range
	}{
		{"hello", cmdline.Range{Start: 2, End: 7}},
		{"world", cmdline.Range{Start: 8, End: 13}},
	}

	for i, step := range steps {
		tok, ok := tokens.Next()
		if !ok || tok != step.text {
			t.Errorf("step %d: Tokens.Next() = (%q, %v), want (%q, true)", i, tok, ok, step.text)
		}
		r, ok := ranges.Next()
		if !ok || r != step.rng {
			t.Errorf("step %d: TokenRanges.Next() = (%v, %v), want (%v, true)", i, r, ok, step.rng)
		}
	}

	if tok, ok := tokens.Next(); ok {
		t.Errorf("Tokens.Next() = %q, want exhausted", tok)
	}
	if r, ok := ranges.Next(); ok {
		t.Errorf("TokenRanges.Next() = %v, want exhausted", r)
	}
}

// TestTokens_Quotes checks verbatim quoted tokens in both views.
func TestTokens_Quotes(t *testing.T) {
	tokens := cmdline.NewTokens("  \"cmdopt.exe\"\tsome\" arg \" +1")
	ranges := cmdline.NewTokenRanges("\"cmdopt.exe\"\tsome\" arg \" +1  ")

	var gotText []string
	for tok := range tokens.All() {
		gotText = append(gotText, tok)
	}
	var gotRanges []cmdline.Range
	for r := range ranges.All() {
		gotRanges = append(gotRanges, r)
	}

	wantText := []string{`"cmdopt.exe"`, `some" arg "`, "+1"}
	wantRanges := []cmdline.Range{{Start: 0, End: 12}, {Start: 13, End: 24}, {Start: 25, End: 27}}

	if diff := cmp.Diff(wantText, gotText); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRanges, gotRanges); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", " \t\r\n", []string{}},
		{"quoted run", `"a b"`, []string{`"a b"`}},
		{"multi quote", `a"b c"d`, []string{`a"b c"d`}},
		{"many quoted runs", `a"b c"d"e f" g`, []string{`a"b c"d"e f"`, "g"}},
		{"unterminated", `say "hi there`, []string{"say", `"hi there`}},
		{"newline separates", "a\nb\r\nc", []string{"a", "b", "c"}},
		{"vertical tab is content", "a\vb c", []string{"a\vb", "c"}},
		{"utf8 content", "héllo  wörld", []string{"héllo", "wörld"}},
		{
			name:  "readme line",
			input: "command -o --long-arg value -- target 1 2 3 4 5",
			want:  []string{"command", "-o", "--long-arg", "value", "--", "target", "1", "2", "3", "4", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cmdline.Split(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if n := cmdline.Count(tt.input); n != len(tt.want) {
				t.Errorf("Count(%q) = %d, want %d", tt.input, n, len(tt.want))
			}
		})
	}
}

// TestSplit_MatchesRanges checks that the text view is the range view plus slicing.
func TestSplit_MatchesRanges(t *testing.T) {
	inputs := []string{
		"",
		"  a  b  ",
		`x "y z" w"v`,
		"\t\"cmdopt.exe\"\tsome\" arg \" +1",
	}

	for _, s := range inputs {
		ranges := cmdline.SplitRanges(s)
		want := make([]string, 0, len(ranges))
		for _, r := range ranges {
			want = append(want, r.In(s))
		}
		if diff := cmp.Diff(want, cmdline.Split(s)); diff != "" {
			t.Errorf("%q: Split differs from SplitRanges (-ranges +split):\n%s", s, diff)
		}
	}
}

// TestTokens_Reconstruct checks that gaps plus tokens rebuild the input.
func TestTokens_Reconstruct(t *testing.T) {
	inputs := []string{
		"hello world  ",
		"  \"cmdopt.exe\"\tsome\" arg \" +1",
		"\r\n a\"\"b \"unterminated\n tail",
	}

	for _, s := range inputs {
		var sb strings.Builder
		prev := 0
		for _, r := range cmdline.SplitRanges(s) {
			if r.Empty() {
				t.Fatalf("%q: empty range %v", s, r)
			}
			if r.Start < prev {
				t.Fatalf("%q: range %v overlaps previous end %d", s, r, prev)
			}
			if strings.TrimLeft(s[prev:r.Start], " \t\r\n") != "" {
				t.Fatalf("%q: non-whitespace gap %q", s, s[prev:r.Start])
			}
			sb.WriteString(s[prev:r.Start])
			sb.WriteString(r.In(s))
			prev = r.End
		}
		sb.WriteString(s[prev:])

		if sb.String() != s {
			t.Errorf("reconstruction = %q, want %q", sb.String(), s)
		}
	}
}

func TestTokens_Tail(t *testing.T) {
	toks := cmdline.NewTokens("run  fast  ")

	if got := toks.Tail(); got != "run  fast  " {
		t.Errorf("Tail() before Next = %q", got)
	}

	toks.Next()
	if got := toks.Tail(); got != "  fast  " {
		t.Errorf("Tail() after first token = %q, want %q", got, "  fast  ")
	}

	toks.Next()
	if got := toks.Tail(); got != "  " {
		t.Errorf("Tail() after last token = %q, want %q", got, "  ")
	}

	for i := 0; i < 2; i++ {
		if tok, ok := toks.Next(); ok {
			t.Fatalf("Next() after exhaustion = %q", tok)
		}
		if got := toks.Tail(); got != "" {
			t.Errorf("Tail() after exhaustion = %q, want empty", got)
		}
	}
}

// TestTokens_AllStopsEarly checks that breaking out of All keeps the cursor usable.
func TestTokens_AllStopsEarly(t *testing.T) {
	toks := cmdline.NewTokens("a b c d")

	for tok := range toks.All() {
		if tok == "b" {
			break
		}
	}

	if got := toks.Tail(); got != " c d" {
		t.Errorf("Tail() = %q, want %q", got, " c d")
	}
	if tok, ok := toks.Next(); !ok || tok != "c" {
		t.Errorf("Next() = (%q, %v), want (\"c\", true)", tok, ok)
	}
}
