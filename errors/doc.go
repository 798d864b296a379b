// Package errors provides structured error types for the actiongen tool.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the source file and line when known, plus
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindMalformedDecl).
//		Line(14).
//		Detail("expected parameter list, got %q", tok).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedDecl(14, "expected parameter list")
//	err := errors.MisplacedMarker(3, "marker on a type declaration")
//
// All errors implement the standard error interface and support errors.Is/As.
// Every error here is fatal to the run that produced it: the tool writes no
// output once one surfaces.
package errors
