package safemocker

import "github.com/Priya28092000/safemocker/schema"

// RootErrorKey is the FieldErrors/ValidationErrors key used for issues on
// the root value itself (an issue with an empty path), e.g. when the input
// is not an object at all.
const RootErrorKey = "_root"

// Result is the uniform envelope produced by every invocation. Exactly one
// of the four slots is populated:
//
//   - Data: the success payload (the output-schema-validated value when an
//     output schema was registered, otherwise the raw handler return)
//   - ServerError: a runtime failure in a middleware, the handler, or the
//     validator itself
//   - FieldErrors: input validation failure, keyed by dot-joined path
//   - ValidationErrors: output validation failure, same key shape
//
// The field/validation split is the emulated framework's one asymmetry
// between input- and output-failure reporting: the slot name differs even
// though the structure is identical.
type Result struct {
	Data             any                 `json:"data,omitempty"`
	ServerError      string              `json:"serverError,omitempty"`
	FieldErrors      map[string][]string `json:"fieldErrors,omitempty"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`
}

// Ok reports whether the invocation succeeded (Data slot populated, even if
// the payload itself is nil-valued data is only wrapped on success).
func (r Result) Ok() bool {
	return r.ServerError == "" && len(r.FieldErrors) == 0 && len(r.ValidationErrors) == 0
}

// issueMap folds structured issues into the envelope's mapping shape:
// each issue's path segments are dot-joined into the key and its message
// appended to that key's sequence. Entries are created lazily as paths are
// first seen, so one key can accumulate several messages.
func issueMap(issues []schema.Issue) map[string][]string {
	m := make(map[string][]string, len(issues))
	for _, is := range issues {
		key := is.Key()
		if key == "" {
			key = RootErrorKey
		}
		m[key] = append(m[key], is.Message)
	}
	return m
}
