package placetopay

import (
	"bytes"
	"encoding/json"
)

// flexString decodes a JSON string, number, or null into its textual form.
// The gateway is inconsistent about scalar types: requestId and status.reason
// arrive as numbers on some endpoints and strings on others.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// unwrapItems returns the element list of a repeated wire field. The gateway
// sends repeated elements as a bare array, a single object, or an object
// wrapped under one of the given keys ({"item": [...]}, {"transaction": [...]}).
func unwrapItems(b []byte, keys ...string) ([]json.RawMessage, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}
	if b[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	for _, k := range keys {
		if inner, ok := obj[k]; ok {
			return unwrapItems(inner, keys...)
		}
	}
	return []json.RawMessage{b}, nil
}

// toMap converts a marshalable payload into a generic map so an auth block
// can be merged in before dispatch.
func toMap(payload any) (map[string]any, error) {
	if payload == nil {
		return map[string]any{}, nil
	}
	if m, ok := payload.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
