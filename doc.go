// Package safemocker is a test double for a safe-action request pipeline.
// It reproduces the framework's observable contract -- schema-validated
// input, chainable middleware with context propagation, metadata injection,
// optional output validation, and a uniform result envelope -- without any
// of the real runtime, so action handlers can be unit-tested in isolation.
//
// The flow mirrors the real framework's builder chain:
//
//	client := safemocker.NewClient()
//	client.Use(loggingMiddleware)
//
//	action := client.
//		InputSchema(schema.Object(schema.F("name", schema.String().NonEmpty()))).
//		Metadata(map[string]any{"actionName": "greet"}).
//		Action(func(ctx context.Context, in safemocker.HandlerInput) (any, error) {
//			return "hello", nil
//		})
//
//	res := action(context.Background(), map[string]any{"name": "ada"})
//
// Every invocation produces a Result with exactly one of Data, ServerError,
// FieldErrors, or ValidationErrors set. No error ever escapes an action:
// handler and middleware failures (including panics) are converted to a
// ServerError, with the message replaced by the client's default in
// production mode.
package safemocker
