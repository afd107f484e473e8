package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of strings stored as a JSON array inside a text
// column. The serialized form is exactly what the column held historically
// ("[\"Frontend\",\"Backend\"]"), so existing rows keep reading and writing
// cleanly.
type StringList []string

// Value serializes the list for storage.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	encoded, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encoding string list: %w", err)
	}
	return string(encoded), nil
}

// Scan deserializes the stored JSON array. NULL scans to an empty list.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("decoding string list: %w", err)
	}
	*l = StringList(decoded)
	return nil
}

// Contains reports whether the list holds the exact value.
func (l StringList) Contains(value string) bool {
	for _, entry := range l {
		if entry == value {
			return true
		}
	}
	return false
}

// Replace returns a copy of the list with every occurrence of old swapped for
// new, preserving order and the rest of the entries. The second return value
// reports whether anything changed.
func (l StringList) Replace(old, new string) (StringList, bool) {
	changed := false
	out := make(StringList, len(l))
	for i, entry := range l {
		if entry == old {
			out[i] = new
			changed = true
		} else {
			out[i] = entry
		}
	}
	return out, changed
}
