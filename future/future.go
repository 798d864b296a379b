package future

import "context"

// noCopy flags relocation of a Handle's pointee under `go vet -copylocks`.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle owns one deferred computation. It is created by New, always
// lives on the heap behind a pointer, and must not be copied after
// construction. Handle is NOT safe for concurrent use: exactly one
// goroutine may drive it, and nothing else may observe the computation
// without an explicit hand-off of the pointer.
type Handle struct {
	noCopy noCopy

	fn   func(context.Context) error
	err  error
	done bool
}

// New allocates a deferred computation. fn does not run here and will
// not run until Drive is called: constructing the handle is synchronous
// and side-effect-free with respect to the computation itself.
func New(fn func(context.Context) error) *Handle {
	return &Handle{fn: fn}
}

// Drive resolves the computation, executing the deferred function with
// the caller's context. The function runs at most once; after it
// completes, further calls return the stored result without re-running.
// A nil result is success; any other error is the computation's single
// failure outcome.
func (h *Handle) Drive(ctx context.Context) error {
	if h.done {
		return h.err
	}
	h.done = true
	h.err = h.fn(ctx)
	h.fn = nil
	return h.err
}

// Done reports whether the computation has been driven to completion.
func (h *Handle) Done() bool { return h.done }

// Err returns the stored result of a completed computation. It is nil
// until Drive has run.
func (h *Handle) Err() error { return h.err }
