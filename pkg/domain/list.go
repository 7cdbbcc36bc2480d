package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseStringList normalizes list-valued form input such as amenities and
// rules. A single value starting with '[' must be a JSON array of strings;
// any other value is split on commas. Repeated values are merged. Items are
// trimmed, empties dropped and duplicates removed keeping first occurrence.
func ParseStringList(values ...string) ([]string, error) {
	var raw []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.HasPrefix(v, "[") {
			var items []string
			if err := json.Unmarshal([]byte(v), &items); err != nil {
				return nil, fmt.Errorf("invalid list value: %w", err)
			}
			raw = append(raw, items...)
			continue
		}
		raw = append(raw, strings.Split(v, ",")...)
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}
