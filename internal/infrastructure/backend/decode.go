package backend

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errUnexpectedShape = errors.New("unexpected response shape")

// decodeList normalizes the list shapes the backend is known to produce:
// a bare JSON array, or an object wrapping the array under the resource key
// ({"restaurants": [...]}) or the generic {"data": [...]}. Anything else is
// errUnexpectedShape so callers can degrade per the error taxonomy.
func decodeList[T any](data []byte, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errUnexpectedShape
	}

	if trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, errUnexpectedShape
	}
	for _, key := range append(keys, "data") {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		var out []T
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, errUnexpectedShape
		}
		return out, nil
	}
	return nil, errUnexpectedShape
}

// decodeObject decodes a single entity, unwrapping {"data": {...}} when the
// backend chooses the enveloped shape. None of the client's entities carry
// a "data" field of their own, so the probe is unambiguous.
func decodeObject[T any](data []byte) (*T, error) {
	trimmed := bytes.TrimSpace(data)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, errUnexpectedShape
	}
	if raw, ok := probe["data"]; ok && len(bytes.TrimSpace(raw)) > 0 && bytes.TrimSpace(raw)[0] == '{' {
		trimmed = raw
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, errUnexpectedShape
	}
	return &out, nil
}
