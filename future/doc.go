// Package future defines the calling convention that rewritten handler
// functions share: every one of them returns *Handle, a heap-allocated,
// non-relocatable unit of suspended work.
//
// The package deliberately stops at the convention. There is no
// scheduler, no registry, and no dispatch here; whatever system
// collects handles decides when and where to call Drive. The deferred
// function's error result is the handler's entire contract with that
// system: nil on success, one error value on failure, no other payload.
package future
