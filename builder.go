package safemocker

import "github.com/Priya28092000/safemocker/schema"

// ActionBuilder is the pre-metadata chain stage produced by
// Client.InputSchema. Each stage method has a value receiver and returns a
// new builder value, so earlier stages are never mutated by later ones: a
// builder can be stored and branched into several actions safely.
type ActionBuilder struct {
	client       *Client
	inputSchema  schema.Schema
	outputSchema schema.Schema
}

// OutputSchema records a schema the handler's return value must satisfy.
// It may be called before or after Metadata with identical effect.
func (b ActionBuilder) OutputSchema(s schema.Schema) ActionBuilder {
	b.outputSchema = s
	return b
}

// Metadata transitions to the post-metadata stage, carrying value opaquely.
// The engine never interprets metadata; middleware receive it verbatim.
func (b ActionBuilder) Metadata(value any) MetadataBuilder {
	return MetadataBuilder{
		client:       b.client,
		inputSchema:  b.inputSchema,
		outputSchema: b.outputSchema,
		metadata:     value,
	}
}

// Action finalizes the chain without metadata and returns the invocable
// action. Nothing executes until the action is invoked.
func (b ActionBuilder) Action(h Handler) Action {
	return buildAction(b.client, b.inputSchema, b.outputSchema, nil, h)
}

// MetadataBuilder is the post-metadata chain stage. It intentionally has no
// Metadata method: the stage split makes "metadata set at most once" a
// compile-time property instead of a runtime check.
type MetadataBuilder struct {
	client       *Client
	inputSchema  schema.Schema
	outputSchema schema.Schema
	metadata     any
}

// OutputSchema records a schema the handler's return value must satisfy.
func (b MetadataBuilder) OutputSchema(s schema.Schema) MetadataBuilder {
	b.outputSchema = s
	return b
}

// Action finalizes the chain and returns the invocable action.
func (b MetadataBuilder) Action(h Handler) Action {
	return buildAction(b.client, b.inputSchema, b.outputSchema, b.metadata, h)
}
