package future

import (
	"context"
	"errors"
	"testing"
)

// Constructing a handle must not run any of the deferred work; only
// driving it does.
func TestDeferredExecution(t *testing.T) {
	count := 0
	h := New(func(ctx context.Context) error {
		count++
		return nil
	})

	if count != 0 {
		t.Fatalf("body ran at construction: count = %d", count)
	}
	if h.Done() {
		t.Fatal("handle reports done before being driven")
	}

	if err := h.Drive(context.Background()); err != nil {
		t.Fatalf("Drive failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("body ran %d times, want 1", count)
	}
	if !h.Done() {
		t.Error("handle not done after driving")
	}
}

func TestDriveOnce(t *testing.T) {
	count := 0
	sentinel := errors.New("boom")
	h := New(func(ctx context.Context) error {
		count++
		return sentinel
	})

	for i := 0; i < 3; i++ {
		if err := h.Drive(context.Background()); !errors.Is(err, sentinel) {
			t.Fatalf("Drive %d: got %v, want sentinel", i, err)
		}
	}
	if count != 1 {
		t.Errorf("body ran %d times, want 1", count)
	}
	if !errors.Is(h.Err(), sentinel) {
		t.Errorf("Err() = %v, want sentinel", h.Err())
	}
}

func TestErrBeforeDrive(t *testing.T) {
	h := New(func(ctx context.Context) error { return errors.New("x") })
	if h.Err() != nil {
		t.Errorf("Err() before Drive = %v, want nil", h.Err())
	}
}

func TestDriveContext(t *testing.T) {
	type key struct{}
	var got any
	h := New(func(ctx context.Context) error {
		got = ctx.Value(key{})
		return nil
	})

	ctx := context.WithValue(context.Background(), key{}, "driver")
	if err := h.Drive(ctx); err != nil {
		t.Fatal(err)
	}
	if got != "driver" {
		t.Errorf("deferred fn saw ctx value %v, want %q", got, "driver")
	}
}
