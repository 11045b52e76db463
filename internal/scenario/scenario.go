// Package scenario loads declarative pipeline scenarios from TOML files and
// runs them through the safemocker engine. A scenario names an input schema
// (as field specs), an input document, and optional metadata and client
// settings; running it builds a fresh client and action around an echo
// handler and returns the resulting envelope. This gives the CLI and
// data-driven test suites a way to exercise the double without writing Go.
package scenario

import (
	"context"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/Priya28092000/safemocker"
	"github.com/Priya28092000/safemocker/internal/logging"
	"github.com/Priya28092000/safemocker/schema"
)

var logger = logging.New("scenario")

// Scenario is one declarative pipeline run, mapped from a TOML file.
type Scenario struct {
	Name               string         `toml:"name"`
	Production         bool           `toml:"production"`
	DefaultServerError string         `toml:"default_server_error"`
	Metadata           map[string]any `toml:"metadata"`
	Input              map[string]any `toml:"input"`
	InputSchema        []FieldSpec    `toml:"input_schema"`
	OutputSchema       []FieldSpec    `toml:"output_schema"`
}

// FieldSpec describes one object field of a schema. Type is one of
// "string", "int", "float", "bool", "any", or "object" (with nested Fields).
// Constraint fields use pointers so "absent" and "zero" stay distinct.
type FieldSpec struct {
	Name      string      `toml:"name"`
	Type      string      `toml:"type"`
	Optional  bool        `toml:"optional"`
	MinLength *int        `toml:"min_length"`
	MaxLength *int        `toml:"max_length"`
	Min       *int64      `toml:"min"`
	Positive  bool        `toml:"positive"`
	Fields    []FieldSpec `toml:"fields"`
}

// Load parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("loading scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing a 'name' field", path)
	}
	if len(s.InputSchema) == 0 {
		return nil, fmt.Errorf("scenario %q: no input_schema fields defined", s.Name)
	}
	return &s, nil
}

// Discover expands a doublestar glob pattern (e.g. "testdata/**/*.toml")
// into a sorted list of scenario file paths.
func Discover(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scenario pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// BuildSchema converts field specs into an object schema. It fails on
// unknown types so a typo in a scenario file is reported up front rather
// than surfacing as a confusing validation result.
func BuildSchema(specs []FieldSpec) (schema.Schema, error) {
	fields := make([]schema.Field, 0, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("schema field is missing a 'name'")
		}
		fs, err := buildFieldSchema(spec)
		if err != nil {
			return nil, err
		}
		f := schema.F(spec.Name, fs)
		if spec.Optional {
			f = f.Optional()
		}
		fields = append(fields, f)
	}
	return schema.Object(fields...), nil
}

func buildFieldSchema(spec FieldSpec) (schema.Schema, error) {
	switch spec.Type {
	case "string":
		s := schema.String()
		if spec.MinLength != nil {
			s = s.MinLength(*spec.MinLength)
		}
		if spec.MaxLength != nil {
			s = s.MaxLength(*spec.MaxLength)
		}
		return s, nil
	case "int":
		s := schema.Int()
		if spec.Positive {
			s = s.Positive()
		}
		if spec.Min != nil {
			s = s.Min(*spec.Min)
		}
		return s, nil
	case "float":
		s := schema.Float()
		if spec.Min != nil {
			s = s.Min(float64(*spec.Min))
		}
		return s, nil
	case "bool":
		return schema.Bool(), nil
	case "any", "":
		return schema.Any(), nil
	case "object":
		return BuildSchema(spec.Fields)
	default:
		return nil, fmt.Errorf("schema field %q: unknown type %q", spec.Name, spec.Type)
	}
}

// Run builds a one-off client and action for the scenario and invokes it
// with the scenario's input. The handler echoes the parsed input, so the
// envelope shows exactly what the pipeline delivered.
func (s *Scenario) Run(ctx context.Context) (safemocker.Result, error) {
	inSchema, err := BuildSchema(s.InputSchema)
	if err != nil {
		return safemocker.Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	opts := []safemocker.Option{safemocker.WithProduction(s.Production)}
	if s.DefaultServerError != "" {
		opts = append(opts, safemocker.WithDefaultServerError(s.DefaultServerError))
	}
	client := safemocker.NewClient(opts...)

	echo := func(ctx context.Context, in safemocker.HandlerInput) (any, error) {
		return in.ParsedInput, nil
	}

	builder := client.InputSchema(inSchema)
	if len(s.OutputSchema) > 0 {
		outSchema, err := BuildSchema(s.OutputSchema)
		if err != nil {
			return safemocker.Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		builder = builder.OutputSchema(outSchema)
	}

	var action safemocker.Action
	if s.Metadata != nil {
		action = builder.Metadata(s.Metadata).Action(echo)
	} else {
		action = builder.Action(echo)
	}

	logger.Debug("running scenario", "name", s.Name, "production", s.Production)
	return action(ctx, anyInput(s.Input)), nil
}

// anyInput widens the decoded input map. A scenario without an [input]
// table runs the pipeline against nil, which exercises the root-level
// validation path.
func anyInput(m map[string]any) any {
	if m == nil {
		return nil
	}
	return m
}
