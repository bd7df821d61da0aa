package schema_registry

import "context"

// endpointCall performs one logical operation against a single registry endpoint.
type endpointCall[T any] func(ctx context.Context) (T, error)

type callOutcome[T any] struct {
	value T
	err   error
}

// race runs all calls concurrently and resolves to a single outcome.
//
// The first call to succeed wins and race returns immediately; the remaining calls
// are abandoned. Their context is cancelled once race returns and whatever they
// produce afterwards is dropped unobserved. If every call fails, the error of the
// call that finished last is returned and all earlier errors are discarded.
//
// There is no retry, backoff or timeout here. An empty call list fails with
// ErrNoEndpoints instead of blocking.
func race[T any](ctx context.Context, calls []endpointCall[T]) (T, error) {
	var zero T
	if len(calls) == 0 {
		return zero, ErrNoEndpoints
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so that abandoned calls can always deliver and exit.
	outcomes := make(chan callOutcome[T], len(calls))
	for _, call := range calls {
		go func() {
			value, err := call(ctx)
			outcomes <- callOutcome[T]{value: value, err: err}
		}()
	}

	var lastErr error
	for range calls {
		outcome := <-outcomes
		if outcome.err == nil {
			return outcome.value, nil
		}
		lastErr = outcome.err
	}

	return zero, lastErr
}
