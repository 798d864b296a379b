package emitter

import (
	"strings"

	"github.com/wippyai/actiongen/internal/ast"
)

// The emitted wrapper always declares this return type and constructs
// it with this call, regardless of anything about the input.
const (
	// HandleType is the declared return type of every emitted wrapper.
	HandleType = "*future.Handle"

	// ImportPath is the package HandleType lives in. The rewrite layer
	// keeps file imports in sync with what Emit references.
	ImportPath = "github.com/wippyai/actiongen/future"

	prologue = " " + HandleType + " {\n\treturn future.New(func(ctx context.Context) error "
	epilogue = ")\n}"
)

// Emit serializes the wrapped form of a declaration.
//
// Receiver, name, type parameters, and parameter list pass through as
// the verbatim input ranges. The input's result annotation is dropped;
// the body block is embedded unmodified inside the deferred-computation
// construct. Emission is deterministic and cannot fail: every field it
// needs is guaranteed present by construction.
func Emit(fn *ast.FuncDecl) string {
	var b strings.Builder
	b.Grow(len(fn.Body) + len(fn.Params) + 96)

	b.WriteString("func ")
	if fn.Receiver != "" {
		b.WriteString(fn.Receiver)
		b.WriteByte(' ')
	}
	b.WriteString(fn.Name)
	b.WriteString(fn.TypeParams)
	b.WriteString(fn.Params)
	b.WriteString(prologue)
	b.WriteString(fn.Body)
	b.WriteString(epilogue)

	return b.String()
}
