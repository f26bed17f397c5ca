package daftar

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field
// order, which keeps snapshot lines diffable. Its zero value is ready to
// use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append marshals the value and appends it under the given key.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", key, err)
		return w
	}
	keyData, _ := json.Marshal(key)
	w.Write(keyData)
	w.WriteString(":")
	w.Write(data)
	w.WriteString(",")
	return w
}

// Optional is like Append but skips the field entirely when the value is
// its type's zero value.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	switch v := value.(type) {
	case string:
		if v == "" {
			return w
		}
	case int:
		if v == 0 {
			return w
		}
	case int64:
		if v == 0 {
			return w
		}
	case interface{ IsZero() bool }:
		if v.IsZero() {
			return w
		}
	case nil:
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON terminates and returns the object built so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.Grow(len(inner) + 2)
	out.WriteString("{")
	out.Write(inner)
	out.WriteString("}")
	return out.Bytes(), nil
}
