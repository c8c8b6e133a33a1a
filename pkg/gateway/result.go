package gateway

import (
	"encoding/json"
	"slices"
)

// Result is a successful reply. It carries the whole parsed body.
type Result struct {
	raw  []byte
	body map[string]any
}

func newResult(raw []byte, body map[string]any) *Result {
	return &Result{raw: slices.Clone(raw), body: body}
}

// Body returns the parsed reply.
func (r *Result) Body() map[string]any { return r.body }

// Raw returns the reply bytes as received.
func (r *Result) Raw() []byte { return r.raw }

// Data returns the conventional "data" member when it is an object.
func (r *Result) Data() (map[string]any, bool) {
	data, ok := r.body["data"].(map[string]any)
	return data, ok
}

// Decode unmarshals the reply into v.
func (r *Result) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}
