package token

import (
	"unicode"
	"unicode/utf8"
)

type Type int

const (
	Comment Type = iota
	Ident
	String
	Number
	LParen
	RParen
	LBrace
	RBrace
	LBrack
	RBrack
	Punct
)

func (t Type) String() string {
	switch t {
	case Comment:
		return "comment"
	case Ident:
		return "identifier"
	case String:
		return "string"
	case Number:
		return "number"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBrack:
		return "'['"
	case RBrack:
		return "']'"
	case Punct:
		return "punctuation"
	}
	return "unknown"
}

// Token is one lexical unit of Go source text. Value is the verbatim
// source slice, so Offset+len(Value) is the byte just past the token.
type Token struct {
	Value  string
	Type   Type
	Offset int
	Line   int
}

// End returns the byte offset one past the token.
func (t Token) End() int { return t.Offset + len(t.Value) }

// IsKeyword reports whether the token is the identifier kw.
func (t Token) IsKeyword(kw string) bool {
	return t.Type == Ident && t.Value == kw
}

// Tokenize splits Go source into tokens. String, rune, and raw string
// literals and comments are single tokens, so structural brace counting
// downstream cannot be confused by bracket characters inside them.
// Tokenize never fails; bytes it does not recognize become punctuation.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1

	for i := 0; i < len(input); {
		c := input[i]

		if c == '\n' {
			line++
			i++
			continue
		}
		if c == ' ' || c == '\t' || c == '\r' {
			i++
			continue
		}

		// Line comment
		if c == '/' && i+1 < len(input) && input[i+1] == '/' {
			start := i
			for i < len(input) && input[i] != '\n' {
				i++
			}
			tokens = append(tokens, Token{input[start:i], Comment, start, line})
			continue
		}

		// Block comment
		if c == '/' && i+1 < len(input) && input[i+1] == '*' {
			start := i
			startLine := line
			i += 2
			for i < len(input) {
				if input[i] == '*' && i+1 < len(input) && input[i+1] == '/' {
					i += 2
					break
				}
				if input[i] == '\n' {
					line++
				}
				i++
			}
			tokens = append(tokens, Token{input[start:i], Comment, start, startLine})
			continue
		}

		// Interpreted string or rune literal
		if c == '"' || c == '\'' {
			start := i
			i++
			for i < len(input) && input[i] != c && input[i] != '\n' {
				if input[i] == '\\' {
					i++
				}
				i++
			}
			if i < len(input) && input[i] == c {
				i++
			}
			tokens = append(tokens, Token{input[start:i], String, start, line})
			continue
		}

		// Raw string literal, may span lines
		if c == '`' {
			start := i
			startLine := line
			i++
			for i < len(input) && input[i] != '`' {
				if input[i] == '\n' {
					line++
				}
				i++
			}
			if i < len(input) {
				i++
			}
			tokens = append(tokens, Token{input[start:i], String, start, startLine})
			continue
		}

		switch c {
		case '(':
			tokens = append(tokens, Token{"(", LParen, i, line})
			i++
			continue
		case ')':
			tokens = append(tokens, Token{")", RParen, i, line})
			i++
			continue
		case '{':
			tokens = append(tokens, Token{"{", LBrace, i, line})
			i++
			continue
		case '}':
			tokens = append(tokens, Token{"}", RBrace, i, line})
			i++
			continue
		case '[':
			tokens = append(tokens, Token{"[", LBrack, i, line})
			i++
			continue
		case ']':
			tokens = append(tokens, Token{"]", RBrack, i, line})
			i++
			continue
		}

		// Number literal (structure only; no validation)
		if c >= '0' && c <= '9' || c == '.' && i+1 < len(input) && input[i+1] >= '0' && input[i+1] <= '9' {
			start := i
			for i < len(input) && isNumByte(input[i]) {
				i++
			}
			tokens = append(tokens, Token{input[start:i], Number, start, line})
			continue
		}

		// Identifier or keyword
		r, size := utf8.DecodeRuneInString(input[i:])
		if r == '_' || unicode.IsLetter(r) {
			start := i
			i += size
			for i < len(input) {
				r, size = utf8.DecodeRuneInString(input[i:])
				if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					break
				}
				i += size
			}
			tokens = append(tokens, Token{input[start:i], Ident, start, line})
			continue
		}

		tokens = append(tokens, Token{input[i : i+size], Punct, i, line})
		i += size
	}

	return tokens
}

func isNumByte(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' ||
		c == 'x' || c == 'X' || c == 'o' || c == 'O' ||
		c == 'b' || c == 'B' || c == '.' || c == '_'
}
