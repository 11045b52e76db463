package safemocker

import "context"

// ActionContext is the per-invocation key/value state threaded through the
// middleware chain into the handler. A fresh empty context is allocated at
// the start of every invocation; it is never shared across invocations.
type ActionContext map[string]any

// NextFunc resumes the middleware chain at the following stage. The patch,
// when non-nil, is shallow-merged over the current context: patch fields
// overwrite same-named fields, everything else is carried forward. Passing
// nil leaves the context unchanged.
type NextFunc func(patch ActionContext) (any, error)

// MiddlewareContext is what each middleware receives: the context
// accumulated so far, the action's metadata verbatim (the engine never
// interprets it), and the continuation.
type MiddlewareContext struct {
	Ctx      ActionContext
	Metadata any
	Next     NextFunc
}

// Middleware intercepts an invocation. It must either call mc.Next (once)
// to continue the chain, or return a value directly to short-circuit it --
// in that case the handler never runs and the returned value propagates
// upward as if it were the handler result. Returning an error aborts the
// invocation through the server-error path.
type Middleware func(ctx context.Context, mc *MiddlewareContext) (any, error)

// HandlerInput is the payload delivered to the user handler once the whole
// chain has run: the schema-parsed input and the final merged context.
type HandlerInput struct {
	ParsedInput any
	Ctx         ActionContext
}

// Handler is the user action body.
type Handler func(ctx context.Context, in HandlerInput) (any, error)

// mergeContext returns base shallow-merged with patch. The result is always
// a fresh map so earlier chain stages never observe later patches through
// their own Ctx reference.
func mergeContext(base, patch ActionContext) ActionContext {
	merged := make(ActionContext, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
