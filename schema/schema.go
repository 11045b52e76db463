// Package schema provides the validation contract consumed by the safemocker
// engine, plus a small reference validator so the test double is usable
// without wiring in an external validation library.
//
// The engine depends only on the Schema interface and the structured Error
// type: Parse either returns the parsed (possibly coerced) value, or an
// *Error carrying an ordered list of Issues. Any validator honoring that
// contract can be plugged into the pipeline.
//
// Usage:
//
//	s := schema.Object(
//		schema.F("name", schema.String().MinLength(1)),
//		schema.F("age", schema.Int().Positive()),
//	)
//	v, err := s.Parse(map[string]any{"name": "ada", "age": 36})
package schema

import (
	"fmt"
	"strings"
)

// Schema validates and coerces an untyped value. Parse returns the coerced
// value on success. On validation failure it returns an *Error; any other
// error kind signals an unexpected validator fault.
type Schema interface {
	Parse(v any) (any, error)
}

// Issue is a single validation finding. Path holds the segments from the
// root to the offending value (object field names and stringified array
// indices); an empty Path means the root value itself failed.
type Issue struct {
	Path    []string
	Message string
}

// Key returns the dot-joined path for the issue, e.g. "data.id".
func (i Issue) Key() string {
	return strings.Join(i.Path, ".")
}

// Error is the structured validation failure returned by Parse. Issues are
// ordered: outer fields before nested ones, in declaration order.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "schema: validation failed"
	}
	first := e.Issues[0]
	where := first.Key()
	if where == "" {
		where = "(root)"
	}
	return fmt.Sprintf("schema: %d issue(s), first at %s: %s", len(e.Issues), where, first.Message)
}

// newError wraps issues in an *Error, or returns nil when there are none.
func newError(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	return &Error{Issues: issues}
}

// prefix prepends seg to the path of every issue. Used when nesting object
// fields so inner issues carry their full path.
func prefix(seg string, issues []Issue) []Issue {
	out := make([]Issue, len(issues))
	for i, is := range issues {
		path := make([]string, 0, len(is.Path)+1)
		path = append(path, seg)
		path = append(path, is.Path...)
		out[i] = Issue{Path: path, Message: is.Message}
	}
	return out
}
