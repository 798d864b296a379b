// Package actiongen rewrites marked Go functions into deferred-execution
// handler wrappers before compilation.
//
// A handler is any function carrying the //actiongen:action directive:
//
//	//actiongen:action
//	func Greet(res *bot.Res, req *bot.Req) error {
//		return res.Send(req.User, "hello")
//	}
//
// Running the tool replaces the declaration in place with
//
//	func Greet(res *bot.Res, req *bot.Req) *future.Handle {
//		return future.New(func(ctx context.Context) error {
//			return res.Send(req.User, "hello")
//		})
//	}
//
// The name and parameter list survive byte-for-byte, so call sites keep
// compiling; only the return contract changes. Calling the rewritten
// function runs nothing from the original body: it allocates a
// *future.Handle, and the body executes only when something later
// drives that handle. Many independently written handlers thereby share
// one calling convention and can be collected, stored, and scheduled
// uniformly by a dispatch layer this repository deliberately does not
// provide.
//
// # Architecture Overview
//
// The tool is a straight-line source-to-source pipeline:
//
//	actiongen/           Root package with the RewriteFile facade
//	├── decl/            Single-declaration transform (parse, then emit)
//	├── rewrite/         Marker scanning, splicing, import maintenance
//	├── future/          The handle type every rewritten function returns
//	├── errors/          Structured error types for diagnostics
//	├── config/          Optional .actiongen.yaml tool configuration
//	├── internal/token/  Go-subset tokenizer with byte offsets
//	├── internal/parser/ Declaration boundary parser
//	├── internal/emitter/ Wrapper serialization
//	└── cmd/actiongen/   CLI and interactive preview
//
// # Behavior Guarantees
//
// The transformer never inspects a function body: it balances braces to
// find the closing one and copies the token range verbatim into the
// output, so no statement is reordered, duplicated, or dropped. The
// emitted return type is fixed: whatever result annotation the marked
// declaration carries is discarded. Parameter count and types never
// affect the transform.
//
// Errors are fatal. A marker on a non-function item or a marked
// declaration that does not parse halts the run with a diagnostic
// naming the file and line, and no output is written.
//
// # Handler Contract
//
// The deferred body runs inside func(ctx context.Context) error. Every
// exit path must therefore yield an error value (nil for success); the
// driving context is available as ctx. The transformer does not verify
// this; a body that breaks the contract fails when the rewritten file
// is compiled, like any other Go code.
package actiongen
