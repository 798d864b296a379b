package token

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			"empty", "",
			nil,
		},
		{
			"ident", "foo",
			[]Token{{"foo", Ident, 0, 1}},
		},
		{
			"brackets", "({[]})",
			[]Token{
				{"(", LParen, 0, 1},
				{"{", LBrace, 1, 1},
				{"[", LBrack, 2, 1},
				{"]", RBrack, 3, 1},
				{"}", RBrace, 4, 1},
				{")", RParen, 5, 1},
			},
		},
		{
			"line_comment", "a // b { c\nd",
			[]Token{
				{"a", Ident, 0, 1},
				{"// b { c", Comment, 2, 1},
				{"d", Ident, 11, 2},
			},
		},
		{
			"block_comment", "a /* {\n} */ b",
			[]Token{
				{"a", Ident, 0, 1},
				{"/* {\n} */", Comment, 2, 1},
				{"b", Ident, 12, 2},
			},
		},
		{
			"string_with_brace", `x := "{"`,
			[]Token{
				{"x", Ident, 0, 1},
				{":", Punct, 2, 1},
				{"=", Punct, 3, 1},
				{`"{"`, String, 5, 1},
			},
		},
		{
			"string_escape", `"a\"b"`,
			[]Token{{`"a\"b"`, String, 0, 1}},
		},
		{
			"rune", `'}'`,
			[]Token{{`'}'`, String, 0, 1}},
		},
		{
			"raw_string", "`a\n{`x",
			[]Token{
				{"`a\n{`", String, 0, 1},
				{"x", Ident, 5, 2},
			},
		},
		{
			"number", "42 0xFF 1_000 3.14",
			[]Token{
				{"42", Number, 0, 1},
				{"0xFF", Number, 3, 1},
				{"1_000", Number, 8, 1},
				{"3.14", Number, 14, 1},
			},
		},
		{
			"unicode_ident", "données x",
			[]Token{
				{"données", Ident, 0, 1},
				{"x", Ident, 9, 1},
			},
		},
		{
			"func_header", "func F(a int)",
			[]Token{
				{"func", Ident, 0, 1},
				{"F", Ident, 5, 1},
				{"(", LParen, 6, 1},
				{"a", Ident, 7, 1},
				{"int", Ident, 9, 1},
				{")", RParen, 12, 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeLines(t *testing.T) {
	toks := Tokenize("a\nb\n\nc")
	lines := []int{1, 2, 4}
	for i, tok := range toks {
		if tok.Line != lines[i] {
			t.Errorf("token %q: line %d, want %d", tok.Value, tok.Line, lines[i])
		}
	}
}

func TestTokenizeNeverDrops(t *testing.T) {
	// Unterminated literals still become tokens; the tokenizer has no
	// failure mode.
	for _, src := range []string{`"abc`, "`abc", `'a`, "/* abc"} {
		toks := Tokenize(src)
		if len(toks) != 1 {
			t.Errorf("%q: got %d tokens, want 1", src, len(toks))
		}
	}
}

func TestEnd(t *testing.T) {
	toks := Tokenize("foo bar")
	if got := toks[0].End(); got != 3 {
		t.Errorf("End() = %d, want 3", got)
	}
	if got := toks[1].End(); got != 7 {
		t.Errorf("End() = %d, want 7", got)
	}
}

func TestIsKeyword(t *testing.T) {
	toks := Tokenize(`func "func"`)
	if !toks[0].IsKeyword("func") {
		t.Error("ident 'func' should match")
	}
	if toks[1].IsKeyword("func") {
		t.Error("string literal should not match")
	}
}
