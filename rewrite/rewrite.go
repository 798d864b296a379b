package rewrite

import (
	stderrors "errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/actiongen/errors"
	"github.com/wippyai/actiongen/internal/emitter"
	"github.com/wippyai/actiongen/internal/parser"
	"github.com/wippyai/actiongen/internal/token"
)

// Directive is the marker that selects a declaration for rewriting. It
// follows the Go directive-comment convention: no space after the
// slashes, placed on the line(s) immediately above the function.
const Directive = "//actiongen:action"

// Function describes one marked declaration found in a file.
type Function struct {
	Name     string
	Original string // the declaration as written, marker excluded
	Wrapped  string // the emitted replacement
	Line     int    // line of the func keyword
}

// Result is the outcome of rewriting one source file.
type Result struct {
	Output    []byte
	Functions []Function
	Changed   bool
}

type patch struct {
	text  string
	start int
	end   int
}

// Rewrite replaces every marked function declaration in src with its
// deferred-execution wrapper and erases the markers. Files without
// markers come back unchanged. The name is used only for diagnostics.
//
// Each marked declaration is transformed independently; a failure on
// any of them fails the whole file and produces no output.
func Rewrite(name string, src []byte) (*Result, error) {
	text := string(src)
	funcs, patches, err := scan(name, text)
	if err != nil {
		return nil, err
	}
	if len(patches) == 0 {
		return &Result{Output: src}, nil
	}

	var b strings.Builder
	b.Grow(len(text) + 64*len(patches))
	last := 0
	for _, pc := range patches {
		b.WriteString(text[last:pc.start])
		b.WriteString(pc.text)
		last = pc.end
	}
	b.WriteString(text[last:])

	out, ierr := ensureImports(b.String())
	if ierr != nil {
		return nil, ierr.InFile(name)
	}

	Logger().Debug("rewrote file",
		zap.String("file", name),
		zap.Int("functions", len(funcs)))

	return &Result{
		Output:    []byte(out),
		Functions: funcs,
		Changed:   true,
	}, nil
}

// Marked reports the marked declarations in src without producing a
// rewritten file. Used by list and preview modes.
func Marked(name string, src []byte) ([]Function, error) {
	funcs, _, err := scan(name, string(src))
	return funcs, err
}

func scan(name, text string) ([]Function, []patch, error) {
	tokens := token.Tokenize(text)

	var funcs []Function
	var patches []patch

	for i := 0; i < len(tokens); i++ {
		t := &tokens[i]
		if t.Type != token.Comment {
			continue
		}
		args, ok := directiveArgs(t.Value)
		if !ok || !atLineStart(text, t.Offset) {
			continue
		}
		if args != "" {
			// Marker arguments are accepted but currently have no effect.
			Logger().Debug("ignoring marker arguments",
				zap.String("file", name),
				zap.Int("line", t.Line),
				zap.String("args", args))
		}

		j := i + 1
		for j < len(tokens) && tokens[j].Type == token.Comment {
			j++
		}
		if j >= len(tokens) {
			return nil, nil, errors.MisplacedMarker(t.Line, "marker at end of file").InFile(name)
		}
		if !tokens[j].IsKeyword("func") {
			return nil, nil, errors.MisplacedMarker(t.Line,
				fmt.Sprintf("marker must be attached to a function declaration, found %q", tokens[j].Value)).InFile(name)
		}

		p := parser.NewAt(text, tokens, j)
		fn, err := p.Parse()
		if err != nil {
			var e *errors.Error
			if stderrors.As(err, &e) {
				return nil, nil, e.InFile(name)
			}
			return nil, nil, err
		}

		wrapped := emitter.Emit(fn)
		funcs = append(funcs, Function{
			Name:     fn.Name,
			Line:     tokens[j].Line,
			Original: text[tokens[j].Offset:p.End()],
			Wrapped:  wrapped,
		})
		patches = append(patches, patch{
			text:  wrapped,
			start: t.Offset,
			end:   p.End(),
		})
		i = p.Pos() - 1
	}

	return funcs, patches, nil
}

// atLineStart reports whether only blank space precedes offset on its
// line. Like Go's own directives, the marker is recognized only there;
// a trailing comment that happens to match is left alone.
func atLineStart(text string, offset int) bool {
	for i := offset - 1; i >= 0; i-- {
		switch text[i] {
		case '\n':
			return true
		case ' ', '\t':
			continue
		default:
			return false
		}
	}
	return true
}

// directiveArgs reports whether a comment token is the marker and
// returns any trailing argument text.
func directiveArgs(comment string) (string, bool) {
	if !strings.HasPrefix(comment, Directive) {
		return "", false
	}
	rest := comment[len(Directive):]
	if rest == "" {
		return "", true
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false // a longer directive, not ours
	}
	return strings.TrimSpace(rest), true
}
