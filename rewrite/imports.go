package rewrite

import (
	"strings"

	"github.com/wippyai/actiongen/errors"
	"github.com/wippyai/actiongen/internal/emitter"
	"github.com/wippyai/actiongen/internal/token"
)

// ensureImports adds the imports the emitted code references, "context"
// and the future package, when the rewritten file lacks them. Missing
// imports go into a fresh import declaration directly after the package
// clause, which keeps the file gofmt-clean regardless of how the
// existing imports are grouped.
func ensureImports(src string) (string, *errors.Error) {
	tokens := token.Tokenize(src)
	futureBase := emitter.ImportPath[strings.LastIndexByte(emitter.ImportPath, '/')+1:]

	i := 0
	for i < len(tokens) && tokens[i].Type == token.Comment {
		i++
	}
	if i+1 >= len(tokens) || !tokens[i].IsKeyword("package") || tokens[i+1].Type != token.Ident {
		return "", errors.InvalidInput(errors.PhaseRewrite, "missing package clause")
	}
	pkgEnd := tokens[i+1].End()
	i += 2

	needCtx := true
	needFuture := true

	check := func(name, path string) *errors.Error {
		eff := name
		if eff == "" {
			eff = path[strings.LastIndexByte(path, '/')+1:]
		}
		switch {
		case path == "context" && (name == "" || name == "context"):
			needCtx = false
		case path == emitter.ImportPath && (name == "" || name == futureBase):
			needFuture = false
		case eff == "context" && path != "context":
			return errors.ImportConflict("context", path, "context")
		case eff == futureBase && path != emitter.ImportPath:
			return errors.ImportConflict(futureBase, path, emitter.ImportPath)
		}
		return nil
	}

	// Imports precede all other declarations; stop at the first
	// declaration that is not an import.
decls:
	for i < len(tokens) {
		t := tokens[i]
		switch {
		case t.Type == token.Comment:
			i++
		case t.IsKeyword("import"):
			i++
			if i >= len(tokens) {
				break decls
			}
			single := ""
			if tokens[i].Type == token.Ident {
				single = tokens[i].Value
				i++
			} else if tokens[i].Type == token.Punct && tokens[i].Value == "." {
				single = "."
				i++
			}
			if i < len(tokens) && tokens[i].Type == token.String {
				if err := check(single, unquote(tokens[i].Value)); err != nil {
					return "", err
				}
				i++
				continue
			}
			if single != "" || i >= len(tokens) || tokens[i].Type != token.LParen {
				break decls
			}
			i++
			name := ""
			for i < len(tokens) && tokens[i].Type != token.RParen {
				tk := tokens[i]
				switch tk.Type {
				case token.Ident:
					name = tk.Value
				case token.Punct:
					if tk.Value == "." {
						name = "."
					}
				case token.String:
					if err := check(name, unquote(tk.Value)); err != nil {
						return "", err
					}
					name = ""
				}
				i++
			}
			i++
		default:
			break decls
		}
	}

	if !needCtx && !needFuture {
		return src, nil
	}

	var b strings.Builder
	b.WriteString("\nimport (\n")
	if needCtx {
		b.WriteString("\t\"context\"\n")
	}
	if needFuture {
		if needCtx {
			b.WriteByte('\n')
		}
		b.WriteString("\t\"" + emitter.ImportPath + "\"\n")
	}
	b.WriteString(")\n")

	at := strings.IndexByte(src[pkgEnd:], '\n')
	if at < 0 {
		return src + b.String(), nil
	}
	at += pkgEnd + 1
	return src[:at] + b.String() + src[at:], nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '`') {
		return s[1 : len(s)-1]
	}
	return s
}
