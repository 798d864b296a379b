package decl

import (
	"github.com/wippyai/actiongen/errors"
	"github.com/wippyai/actiongen/internal/emitter"
	"github.com/wippyai/actiongen/internal/parser"
	"github.com/wippyai/actiongen/internal/token"
)

// Transform rewrites exactly one function declaration so that calling
// it returns a deferred computation handle instead of running the body.
//
// The input must be a single function declaration and nothing else.
// Name, receiver, type parameters, and parameter list survive
// byte-for-byte; any result annotation is replaced by the fixed handle
// type; the body moves, unmodified, into the deferred construct.
func Transform(src string) (string, error) {
	tokens := token.Tokenize(src)
	p := parser.New(src, tokens)
	fn, err := p.Parse()
	if err != nil {
		return "", err
	}
	if t := p.Trailing(); t != nil {
		return "", errors.MalformedDecl(t.Line, "unexpected %q after function declaration", t.Value)
	}
	return emitter.Emit(fn), nil
}
