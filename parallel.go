package safemocker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Invocation pairs an action with the input to call it with.
type Invocation struct {
	Action Action
	Input  any
}

// Parallel invokes every invocation concurrently and returns their
// envelopes in argument order. Actions never return errors, so Parallel
// always returns a fully populated slice; it exists for test suites that
// assert invocation independence under concurrency.
func Parallel(ctx context.Context, invs ...Invocation) []Result {
	results := make([]Result, len(invs))
	g, ctx := errgroup.WithContext(ctx)
	for i, inv := range invs {
		i, inv := i, inv
		g.Go(func() error {
			results[i] = inv.Action(ctx, inv.Input)
			return nil
		})
	}
	// The group never carries an error; Wait is only a join point.
	_ = g.Wait()
	return results
}
