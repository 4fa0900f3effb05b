package domain

import (
	"encoding/json"
	"fmt"
)

// ID is a backend entity identifier. Different backend endpoints serialize
// the same id as a JSON number or a JSON string, so ID accepts both on the
// wire and always compares in canonical string form.
type ID string

func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id carries no value.
func (id ID) IsZero() bool {
	return id == ""
}

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: cannot decode %q", string(b))
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON always emits the canonical string form.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// NormalizeID converts an arbitrary decoded JSON value (string or number)
// into an ID. Values that are neither yield an empty ID.
func NormalizeID(v any) ID {
	switch t := v.(type) {
	case string:
		return ID(t)
	case json.Number:
		return ID(t.String())
	case float64:
		// Integral ids survive the float64 round-trip intact.
		return ID(fmt.Sprintf("%.0f", t))
	case int:
		return ID(fmt.Sprintf("%d", t))
	case int64:
		return ID(fmt.Sprintf("%d", t))
	default:
		return ""
	}
}
