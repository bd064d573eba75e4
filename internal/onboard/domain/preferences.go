package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

var ErrInvalidPreferences = errors.New("preferences must be an array of strings or an object")

// Preferences is an ordered set of preference tags.
//
// The JSON form is an array of strings. An object is also accepted, in which
// case every key with a truthy value becomes an entry in key order.
type Preferences []string

// NewPreferences trims, drops empties and removes duplicates keeping the
// first occurrence.
func NewPreferences(values ...string) Preferences {
	out := make(Preferences, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Clone returns an independent copy, never nil.
func (p Preferences) Clone() Preferences {
	out := make(Preferences, len(p))
	copy(out, p)
	return out
}

// Contains reports whether tag is in the set.
func (p Preferences) Contains(tag string) bool {
	for _, v := range p {
		if v == tag {
			return true
		}
	}
	return false
}

func (p Preferences) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

func (p *Preferences) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Preferences{}
		return nil
	}

	switch data[0] {
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return ErrInvalidPreferences
		}
		*p = NewPreferences(list...)
		return nil

	case '{':
		var obj map[string]any
		if err := json.Unmarshal(data, &obj); err != nil {
			return ErrInvalidPreferences
		}
		keys := make([]string, 0, len(obj))
		for k, v := range obj {
			if truthy(v) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		*p = NewPreferences(keys...)
		return nil
	}

	return ErrInvalidPreferences
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return false
}
