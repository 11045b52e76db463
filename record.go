package safemocker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Call is one recorded invocation of a wrapped action.
type Call struct {
	// Name is the label given to Recorder.Wrap.
	Name string
	// Fingerprint is a stable hash of the marshaled input, so tests can
	// assert that two calls carried the same payload without deep-comparing
	// arbitrary values.
	Fingerprint uint64
	// Result is the envelope the invocation produced.
	Result Result
}

// Recorder captures invocations of wrapped actions. It is a test-double
// staple: wrap the actions under test, run the code, then assert on call
// counts and payload fingerprints. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Wrap returns an action that records every invocation under name before
// delegating to a.
func (r *Recorder) Wrap(name string, a Action) Action {
	return func(ctx context.Context, input any) Result {
		res := a(ctx, input)
		r.mu.Lock()
		r.calls = append(r.calls, Call{Name: name, Fingerprint: Fingerprint(input), Result: res})
		r.mu.Unlock()
		return res
	}
}

// Calls returns a copy of all recorded calls in invocation order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallCount returns how many recorded calls carry the given name.
func (r *Recorder) CallCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// Fingerprint returns a stable xxhash of v's JSON encoding. Values that
// cannot be marshaled hash their Go string representation instead, so the
// fingerprint is always defined.
func Fingerprint(v any) uint64 {
	b, err := json.Marshal(v)
	if err != nil {
		b = []byte(fmt.Sprintf("%#v", v))
	}
	return xxhash.Sum64(b)
}
