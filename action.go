package safemocker

import (
	"context"
	"errors"
	"fmt"

	"github.com/Priya28092000/safemocker/schema"
)

// Action is an invocable built by the chain builder. Invoking it runs the
// full pipeline: input validation, the middleware chain, the handler,
// optional output validation, and envelope wrapping. It never returns an
// error and never panics; every failure is folded into the Result.
//
// Distinct invocations are fully independent -- each allocates its own
// ActionContext and chain state -- so an Action may be called concurrently.
type Action func(ctx context.Context, input any) Result

// buildAction closes over the accumulated chain configuration and the
// client. The client's middleware list is deliberately read at invocation
// time (see Client), while the config was snapshotted when the chain began.
func buildAction(c *Client, inputSchema, outputSchema schema.Schema, metadata any, handler Handler) Action {
	cfg := c.cfg

	return func(ctx context.Context, input any) (res Result) {
		// Outermost catch: panics anywhere in the chain become a server
		// error, same as the framework's top-level try/catch.
		defer func() {
			if r := recover(); r != nil {
				c.trace("action panicked", "panic", r)
				res = serverErrorResult(fmt.Errorf("panic: %v", r), cfg)
			}
		}()

		// Phase 1: input validation.
		parsed, err := inputSchema.Parse(input)
		if err != nil {
			var se *schema.Error
			if errors.As(err, &se) {
				c.trace("input validation failed", "issues", len(se.Issues))
				return Result{FieldErrors: issueMap(se.Issues)}
			}
			// The validator itself misbehaved; that is a runtime failure,
			// not a structured validation outcome.
			return serverErrorResult(err, cfg)
		}
		c.trace("input validated")

		// Phase 2: middleware chain, then the handler.
		out, err := runChain(ctx, c.middlewares, metadata, parsed, handler)
		if err != nil {
			c.trace("chain failed", "error", err)
			return serverErrorResult(err, cfg)
		}

		// Phase 3: optional output validation. On success the validated
		// (schema-coerced) value wins over the raw handler return.
		if outputSchema != nil {
			validated, err := outputSchema.Parse(out)
			if err != nil {
				var se *schema.Error
				if errors.As(err, &se) {
					c.trace("output validation failed", "issues", len(se.Issues))
					return Result{ValidationErrors: issueMap(se.Issues)}
				}
				return serverErrorResult(err, cfg)
			}
			out = validated
		}

		// Phase 4: success wrapping.
		c.trace("action completed")
		return Result{Data: out}
	}
}

// runChain threads an accumulating context through mws in registration
// order, ending at the handler. It is an explicit index-driven recursion:
// each middleware's Next resumes at index+1 with the patch merged in. A
// middleware that never calls Next short-circuits the chain and its return
// value propagates upward as the handler result.
func runChain(ctx context.Context, mws []Middleware, metadata any, parsed any, handler Handler) (any, error) {
	var run func(idx int, actx ActionContext) (any, error)
	run = func(idx int, actx ActionContext) (any, error) {
		if idx >= len(mws) {
			return handler(ctx, HandlerInput{ParsedInput: parsed, Ctx: actx})
		}
		mc := &MiddlewareContext{
			Ctx:      actx,
			Metadata: metadata,
			Next: func(patch ActionContext) (any, error) {
				next := actx
				if patch != nil {
					next = mergeContext(actx, patch)
				}
				return run(idx+1, next)
			},
		}
		return mws[idx](ctx, mc)
	}
	return run(0, ActionContext{})
}

// trace writes a debug log line when the client has a logger attached.
func (c *Client) trace(msg string, kvs ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, kvs...)
}
