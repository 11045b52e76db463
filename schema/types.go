package schema

import (
	"fmt"
	"math"
)

// Compile-time interface compliance checks.
var (
	_ Schema = (*StringSchema)(nil)
	_ Schema = (*IntSchema)(nil)
	_ Schema = (*FloatSchema)(nil)
	_ Schema = (*BoolSchema)(nil)
	_ Schema = (*AnySchema)(nil)
	_ Schema = (*ObjectSchema)(nil)
)

// StringSchema validates string values with optional length constraints.
// Constraint methods return a modified copy so a schema value can be shared
// and extended without affecting earlier uses.
type StringSchema struct {
	minLen *int
	maxLen *int
}

// String returns a schema accepting any string.
func String() *StringSchema { return &StringSchema{} }

// MinLength requires the string to contain at least n characters.
func (s *StringSchema) MinLength(n int) *StringSchema {
	c := *s
	c.minLen = &n
	return &c
}

// MaxLength requires the string to contain at most n characters.
func (s *StringSchema) MaxLength(n int) *StringSchema {
	c := *s
	c.maxLen = &n
	return &c
}

// NonEmpty is shorthand for MinLength(1).
func (s *StringSchema) NonEmpty() *StringSchema { return s.MinLength(1) }

func (s *StringSchema) check(v any) (any, []Issue) {
	str, ok := v.(string)
	if !ok {
		return nil, []Issue{{Message: fmt.Sprintf("expected string, got %T", v)}}
	}
	var issues []Issue
	if s.minLen != nil && len(str) < *s.minLen {
		issues = append(issues, Issue{Message: fmt.Sprintf("must contain at least %d character(s)", *s.minLen)})
	}
	if s.maxLen != nil && len(str) > *s.maxLen {
		issues = append(issues, Issue{Message: fmt.Sprintf("must contain at most %d character(s)", *s.maxLen)})
	}
	return str, issues
}

// Parse implements Schema.
func (s *StringSchema) Parse(v any) (any, error) {
	val, issues := s.check(v)
	if err := newError(issues); err != nil {
		return nil, err
	}
	return val, nil
}

// IntSchema validates integer values. Floating-point inputs are accepted
// when they carry an integral value (JSON decoding yields float64 for all
// numbers), and the parsed value is normalized to int64.
type IntSchema struct {
	min      *int64
	positive bool
}

// Int returns a schema accepting any integer.
func Int() *IntSchema { return &IntSchema{} }

// Min requires the value to be >= n.
func (s *IntSchema) Min(n int64) *IntSchema {
	c := *s
	c.min = &n
	return &c
}

// Positive requires the value to be > 0.
func (s *IntSchema) Positive() *IntSchema {
	c := *s
	c.positive = true
	return &c
}

func (s *IntSchema) check(v any) (any, []Issue) {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case float64:
		if t != math.Trunc(t) {
			return nil, []Issue{{Message: fmt.Sprintf("expected integer, got %v", t)}}
		}
		n = int64(t)
	default:
		return nil, []Issue{{Message: fmt.Sprintf("expected integer, got %T", v)}}
	}
	var issues []Issue
	if s.positive && n <= 0 {
		issues = append(issues, Issue{Message: "must be greater than 0"})
	}
	if s.min != nil && n < *s.min {
		issues = append(issues, Issue{Message: fmt.Sprintf("must be greater than or equal to %d", *s.min)})
	}
	return n, issues
}

// Parse implements Schema.
func (s *IntSchema) Parse(v any) (any, error) {
	val, issues := s.check(v)
	if err := newError(issues); err != nil {
		return nil, err
	}
	return val, nil
}

// FloatSchema validates numeric values, normalized to float64.
type FloatSchema struct {
	min *float64
}

// Float returns a schema accepting any number.
func Float() *FloatSchema { return &FloatSchema{} }

// Min requires the value to be >= n.
func (s *FloatSchema) Min(n float64) *FloatSchema {
	c := *s
	c.min = &n
	return &c
}

func (s *FloatSchema) check(v any) (any, []Issue) {
	var f float64
	switch t := v.(type) {
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case float32:
		f = float64(t)
	case float64:
		f = t
	default:
		return nil, []Issue{{Message: fmt.Sprintf("expected number, got %T", v)}}
	}
	var issues []Issue
	if s.min != nil && f < *s.min {
		issues = append(issues, Issue{Message: fmt.Sprintf("must be greater than or equal to %v", *s.min)})
	}
	return f, issues
}

// Parse implements Schema.
func (s *FloatSchema) Parse(v any) (any, error) {
	val, issues := s.check(v)
	if err := newError(issues); err != nil {
		return nil, err
	}
	return val, nil
}

// BoolSchema validates boolean values.
type BoolSchema struct{}

// Bool returns a schema accepting a boolean.
func Bool() *BoolSchema { return &BoolSchema{} }

func (s *BoolSchema) check(v any) (any, []Issue) {
	b, ok := v.(bool)
	if !ok {
		return nil, []Issue{{Message: fmt.Sprintf("expected boolean, got %T", v)}}
	}
	return b, nil
}

// Parse implements Schema.
func (s *BoolSchema) Parse(v any) (any, error) {
	val, issues := s.check(v)
	if err := newError(issues); err != nil {
		return nil, err
	}
	return val, nil
}

// AnySchema accepts every value unchanged, including nil.
type AnySchema struct{}

// Any returns a schema that never fails.
func Any() *AnySchema { return &AnySchema{} }

// Parse implements Schema.
func (s *AnySchema) Parse(v any) (any, error) { return v, nil }
