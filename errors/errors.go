package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseScan    Phase = "scan"    // marker scanning
	PhaseParse   Phase = "parse"   // declaration parsing
	PhaseEmit    Phase = "emit"    // wrapper emission
	PhaseRewrite Phase = "rewrite" // file-level substitution
	PhaseConfig  Phase = "config"  // tool configuration
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedDecl   Kind = "malformed_declaration"
	KindMisplacedMarker Kind = "misplaced_marker"
	KindUnexpectedEOF   Kind = "unexpected_eof"
	KindImportConflict  Kind = "import_conflict"
	KindInvalidInput    Kind = "invalid_input"
	KindNotFound        Kind = "not_found"
)

// Error is the structured error type used throughout the tool
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	File   string
	Detail string
	Line   int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.File != "" {
		b.WriteString(" at ")
		b.WriteString(e.File)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
	} else if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// InFile returns a copy of the error annotated with a file name.
// Parser errors carry only line numbers; the rewrite layer adds the
// file once it is known.
func (e *Error) InFile(name string) *Error {
	c := *e
	c.File = name
	return &c
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// File sets the source file name
func (b *Builder) File(name string) *Builder {
	b.err.File = name
	return b
}

// Line sets the source line
func (b *Builder) Line(line int) *Builder {
	b.err.Line = line
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedDecl creates a malformed declaration error
func MalformedDecl(line int, detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindMalformedDecl,
		Line:   line,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// UnexpectedEOF creates an unexpected end-of-input error
func UnexpectedEOF(detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedEOF,
		Detail: detail,
	}
}

// MisplacedMarker creates an error for a marker not attached to a function
func MisplacedMarker(line int, detail string) *Error {
	return &Error{
		Phase:  PhaseScan,
		Kind:   KindMisplacedMarker,
		Line:   line,
		Detail: detail,
	}
}

// ImportConflict creates an error for a colliding import name
func ImportConflict(name, existing, wanted string) *Error {
	return &Error{
		Phase: PhaseRewrite,
		Kind:  KindImportConflict,
		Detail: fmt.Sprintf("import name %q already bound to %q, need %q",
			name, existing, wanted),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Config creates a configuration error
func Config(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}
