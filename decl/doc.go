// Package decl transforms a single function declaration into its
// deferred-execution wrapper form.
//
// The transformation is a straight-line structural rewrite: parse the
// declaration into its parts, then emit a replacement whose declared
// return type is *future.Handle and whose body is one statement that
// allocates the deferred computation. For
//
//	func Greet(res *bot.Res, req *bot.Req) error {
//		return res.Send(req.User, "hello")
//	}
//
// Transform produces
//
//	func Greet(res *bot.Res, req *bot.Req) *future.Handle {
//		return future.New(func(ctx context.Context) error {
//			return res.Send(req.User, "hello")
//		})
//	}
//
// None of the original body runs when the emitted function is called;
// the body executes only when the returned handle is driven.
//
// The body is opaque: it is captured as a verbatim token range and
// never inspected, so any statements the host grammar allows pass
// through untouched. Parsing is total-or-fatal: input that is not a
// single well-formed function declaration yields an error and no
// output. Each call is independent and stateless.
package decl
