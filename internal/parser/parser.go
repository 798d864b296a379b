package parser

import (
	"github.com/wippyai/actiongen/errors"
	"github.com/wippyai/actiongen/internal/ast"
	"github.com/wippyai/actiongen/internal/token"
)

// Parser decomposes exactly one function declaration from a token
// stream. It recognizes just enough Go grammar to locate the boundaries
// of each part; the parts themselves are captured as verbatim byte
// ranges of the source.
type Parser struct {
	src    string
	tokens []token.Token
	last   *token.Token
	pos    int
	end    int
}

// New creates a parser over a full token stream.
func New(src string, tokens []token.Token) *Parser {
	return &Parser{src: src, tokens: tokens}
}

// NewAt creates a parser that starts at token index pos. Used by the
// rewrite layer to parse a declaration found mid-file.
func NewAt(src string, tokens []token.Token, pos int) *Parser {
	return &Parser{src: src, tokens: tokens, pos: pos}
}

// End returns the byte offset one past the declaration's closing body
// brace. Valid only after a successful Parse.
func (p *Parser) End() int { return p.end }

// Pos returns the index of the next unconsumed token, letting callers
// that scan a larger stream continue where the declaration ended.
func (p *Parser) Pos() int { return p.pos }

// Trailing returns the first unconsumed non-comment token, or nil if
// the stream is exhausted.
func (p *Parser) Trailing() *token.Token {
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].Type != token.Comment {
			return &p.tokens[i]
		}
	}
	return nil
}

// peek returns the next non-comment token without consuming it.
func (p *Parser) peek() *token.Token {
	for p.pos < len(p.tokens) && p.tokens[p.pos].Type == token.Comment {
		p.pos++
	}
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

// next consumes and returns the next non-comment token.
func (p *Parser) next() *token.Token {
	t := p.peek()
	if t == nil {
		return nil
	}
	p.pos++
	p.last = t
	return t
}

// Parse decomposes the declaration. Anything that is not a single
// well-formed function declaration fails; there is no lenient mode.
func (p *Parser) Parse() (*ast.FuncDecl, error) {
	t := p.next()
	if t == nil {
		return nil, errors.UnexpectedEOF("expected function declaration")
	}
	if !t.IsKeyword("func") {
		return nil, errors.MalformedDecl(t.Line, "expected 'func', got %q", t.Value)
	}

	fn := &ast.FuncDecl{}

	// Optional method receiver.
	if nt := p.peek(); nt != nil && nt.Type == token.LParen {
		raw, err := p.group(token.LParen, token.RParen, "receiver")
		if err != nil {
			return nil, err
		}
		fn.Receiver = raw
	}

	t = p.next()
	if t == nil {
		return nil, errors.UnexpectedEOF("expected function name")
	}
	if t.Type != token.Ident {
		return nil, errors.MalformedDecl(t.Line, "expected function name, got %q", t.Value)
	}
	fn.Name = t.Value

	// Optional type parameter list.
	if nt := p.peek(); nt != nil && nt.Type == token.LBrack {
		raw, err := p.group(token.LBrack, token.RBrack, "type parameters")
		if err != nil {
			return nil, err
		}
		fn.TypeParams = raw
	}

	nt := p.peek()
	if nt == nil {
		return nil, errors.UnexpectedEOF("expected parameter list")
	}
	if nt.Type != token.LParen {
		return nil, errors.MalformedDecl(nt.Line, "expected parameter list, got %q", nt.Value)
	}
	raw, err := p.group(token.LParen, token.RParen, "parameter list")
	if err != nil {
		return nil, err
	}
	fn.Params = raw

	res, err := p.scanResult()
	if err != nil {
		return nil, err
	}
	fn.Result = res

	nt = p.peek()
	if nt == nil {
		return nil, errors.UnexpectedEOF("expected function body")
	}
	if nt.Type != token.LBrace {
		return nil, errors.MalformedDecl(nt.Line, "expected function body, got %q", nt.Value)
	}
	raw, err = p.group(token.LBrace, token.RBrace, "function body")
	if err != nil {
		return nil, err
	}
	fn.Body = raw
	p.end = p.last.End()

	return fn, nil
}

// group consumes a balanced bracket group and returns its verbatim
// source range, delimiters included. Literals and comments are single
// tokens, so brackets inside them cannot unbalance the count.
func (p *Parser) group(open, close token.Type, what string) (string, error) {
	t := p.next()
	start := t.Offset
	depth := 1
	for depth > 0 {
		t = p.next()
		if t == nil {
			return "", errors.UnexpectedEOF("unterminated " + what)
		}
		switch t.Type {
		case open:
			depth++
		case close:
			depth--
		}
	}
	return p.src[start:t.End()], nil
}

// scanResult consumes the optional result annotation, stopping at the
// brace that opens the function body. The annotation is discarded by
// emission, so this only needs to know where it ends: it skips balanced
// groups whole, and treats a brace block directly after 'struct' or
// 'interface' as part of the type rather than the body.
func (p *Parser) scanResult() (string, error) {
	t := p.peek()
	if t == nil {
		return "", errors.UnexpectedEOF("expected function body")
	}
	if t.Type == token.LBrace {
		return "", nil
	}
	start := t.Offset

	if t.Type == token.LParen {
		if _, err := p.group(token.LParen, token.RParen, "result list"); err != nil {
			return "", err
		}
		return p.src[start:p.last.End()], nil
	}

	for {
		t = p.peek()
		if t == nil {
			return "", errors.UnexpectedEOF("expected function body")
		}
		switch t.Type {
		case token.LBrace:
			return p.src[start:p.last.End()], nil
		case token.LParen:
			if _, err := p.group(token.LParen, token.RParen, "result type"); err != nil {
				return "", err
			}
		case token.LBrack:
			if _, err := p.group(token.LBrack, token.RBrack, "result type"); err != nil {
				return "", err
			}
		case token.RParen, token.RBrace, token.RBrack:
			return "", errors.MalformedDecl(t.Line, "unexpected %q in result type", t.Value)
		case token.Ident:
			p.next()
			if t.Value == "struct" || t.Value == "interface" {
				if nt := p.peek(); nt != nil && nt.Type == token.LBrace {
					if _, err := p.group(token.LBrace, token.RBrace, "result type"); err != nil {
						return "", err
					}
				}
			}
		default:
			p.next()
		}
	}
}
