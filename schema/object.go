package schema

import "fmt"

// Field pairs a name with the schema validating that field of an object.
type Field struct {
	Name     string
	Schema   Schema
	optional bool
}

// F declares a required object field.
func F(name string, s Schema) Field {
	return Field{Name: name, Schema: s}
}

// Optional marks the field as optional: a missing value produces no issue
// and no entry in the parsed output.
func (f Field) Optional() Field {
	f.optional = true
	return f
}

// ObjectSchema validates a string-keyed map against an ordered list of field
// declarations. Fields are checked in declaration order so issue ordering is
// deterministic. Parsing returns a fresh map containing only declared fields
// with their coerced values; unknown input keys are stripped.
type ObjectSchema struct {
	fields []Field
}

// Object returns a schema over the given fields. Declaration order is
// preserved for both validation and issue reporting.
func Object(fields ...Field) *ObjectSchema {
	return &ObjectSchema{fields: fields}
}

func (s *ObjectSchema) check(v any) (any, []Issue) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, []Issue{{Message: fmt.Sprintf("expected object, got %T", v)}}
	}

	out := make(map[string]any, len(s.fields))
	var issues []Issue
	for _, f := range s.fields {
		raw, present := m[f.Name]
		if !present {
			if f.optional {
				continue
			}
			issues = append(issues, Issue{Path: []string{f.Name}, Message: "required"})
			continue
		}
		val, err := f.Schema.Parse(raw)
		if err != nil {
			se, ok := err.(*Error)
			if !ok {
				// Non-structured validator fault; surface it as an issue on
				// this field rather than losing it.
				issues = append(issues, Issue{Path: []string{f.Name}, Message: err.Error()})
				continue
			}
			issues = append(issues, prefix(f.Name, se.Issues)...)
			continue
		}
		out[f.Name] = val
	}
	return out, issues
}

// Parse implements Schema.
func (s *ObjectSchema) Parse(v any) (any, error) {
	val, issues := s.check(v)
	if err := newError(issues); err != nil {
		return nil, err
	}
	return val, nil
}
