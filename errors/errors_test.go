package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string
	}{
		{
			"phase_and_kind",
			&Error{Phase: PhaseParse, Kind: KindMalformedDecl},
			[]string{"[parse]", "malformed_declaration"},
		},
		{
			"with_line",
			MalformedDecl(14, "expected parameter list"),
			[]string{"[parse]", "at line 14", "expected parameter list"},
		},
		{
			"with_file",
			MalformedDecl(14, "expected parameter list").InFile("handlers.go"),
			[]string{"at handlers.go:14"},
		},
		{
			"with_cause",
			Config("read .actiongen.yaml", fmt.Errorf("permission denied")),
			[]string{"[config]", "caused by: permission denied"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("%q missing %q", msg, want)
				}
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := MisplacedMarker(3, "marker on a type declaration")
	if !stderrors.Is(err, &Error{Phase: PhaseScan, Kind: KindMisplacedMarker}) {
		t.Error("same phase+kind should match")
	}
	if stderrors.Is(err, &Error{Phase: PhaseParse, Kind: KindMisplacedMarker}) {
		t.Error("different phase should not match")
	}
	if stderrors.Is(err, stderrors.New("other")) {
		t.Error("foreign error should not match")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := New(PhaseRewrite, KindInvalidInput).Cause(cause).Build()
	if !stderrors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseParse, KindUnexpectedEOF).
		File("h.go").
		Line(7).
		Detail("expected %q", "}").
		Build()
	if err.File != "h.go" || err.Line != 7 {
		t.Errorf("builder lost location: %+v", err)
	}
	if err.Detail != `expected "}"` {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestInFileCopies(t *testing.T) {
	base := MalformedDecl(1, "x")
	annotated := base.InFile("a.go")
	if base.File != "" {
		t.Error("InFile mutated the original")
	}
	if annotated.File != "a.go" || annotated.Line != base.Line {
		t.Errorf("bad copy: %+v", annotated)
	}
}
