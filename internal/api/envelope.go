package api

import (
	"encoding/json"
	"fmt"
)

// DecodeList normalizes the two list shapes the backend is known to
// return: a bare JSON array, or an object wrapping the array under the
// entity's plural key ({"vendors": [...]}). Store logic only ever sees
// the canonical slice.
func DecodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", key, err)
	}
	inner, ok := wrapped[key]
	if !ok {
		return nil, fmt.Errorf("decode %s list: missing %q field", key, key)
	}
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", key, err)
	}
	return items, nil
}

// DecodeOne unmarshals a single entity response.
func DecodeOne[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}
