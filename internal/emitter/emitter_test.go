package emitter

import (
	"strings"
	"testing"

	"github.com/wippyai/actiongen/internal/ast"
)

func TestEmit(t *testing.T) {
	fn := &ast.FuncDecl{
		Name:   "Greet",
		Params: "(res *bot.Res, req *bot.Req)",
		Result: "error",
		Body:   "{\n\treturn res.Send(req.User, \"hi\")\n}",
	}
	got := Emit(fn)
	want := "func Greet(res *bot.Res, req *bot.Req) *future.Handle {\n" +
		"\treturn future.New(func(ctx context.Context) error {\n" +
		"\treturn res.Send(req.User, \"hi\")\n" +
		"})\n" +
		"}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEmitReceiver(t *testing.T) {
	fn := &ast.FuncDecl{
		Name:     "Handle",
		Receiver: "(b *Bot)",
		Params:   "(req Req)",
		Body:     "{ b.use(req) }",
	}
	got := Emit(fn)
	if !strings.HasPrefix(got, "func (b *Bot) Handle(req Req) "+HandleType+" {") {
		t.Errorf("receiver not carried through: %s", got)
	}
}

func TestEmitTypeParams(t *testing.T) {
	fn := &ast.FuncDecl{
		Name:       "Handle",
		TypeParams: "[T any]",
		Params:     "(v T)",
		Body:       "{ use(v) }",
	}
	got := Emit(fn)
	if !strings.HasPrefix(got, "func Handle[T any](v T) ") {
		t.Errorf("type params not carried through: %s", got)
	}
}

// The result annotation never reaches the output; the return type is
// the same fixed handle type no matter what the input declared.
func TestEmitDiscardsResult(t *testing.T) {
	for _, result := range []string{"", "error", "(int, error)", "chan struct{}", "*Response"} {
		fn := &ast.FuncDecl{Name: "F", Params: "()", Result: result, Body: "{}"}
		got := Emit(fn)
		want := "func F() " + HandleType + " {\n\treturn future.New(func(ctx context.Context) error {})\n}"
		if got != want {
			t.Errorf("result %q changed the output:\n%s", result, got)
		}
	}
}

// The body block is embedded verbatim, braces and all.
func TestEmitBodyVerbatim(t *testing.T) {
	body := "{\n\t// keep me\n\tx := \"}{\"\n\tif x != \"\" {\n\t\tpanic(x)\n\t}\n\treturn nil\n}"
	fn := &ast.FuncDecl{Name: "F", Params: "()", Body: body}
	if got := Emit(fn); !strings.Contains(got, body) {
		t.Errorf("body not embedded verbatim:\n%s", got)
	}
}
