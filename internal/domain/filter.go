package domain

import "strings"

// UnknownType is the filter name matching records without a category.
const UnknownType = "unknown"

// FilterByType keeps records whose category matches one of types,
// case-insensitively. An empty filter keeps everything.
func FilterByType(records []ModelRecord, types []string) []ModelRecord {
	if len(types) == 0 {
		return records
	}
	want := make(map[string]bool, len(types))
	for _, t := range types {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			want[t] = true
		}
	}
	if len(want) == 0 {
		return records
	}

	filtered := make([]ModelRecord, 0, len(records))
	for _, r := range records {
		t := strings.ToLower(r.TypeOrEmpty())
		if t == "" {
			t = UnknownType
		}
		if want[t] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Types returns the distinct categories present in records, in first-seen
// order, with UnknownType for records without one.
func Types(records []ModelRecord) []string {
	seen := make(map[string]bool)
	var types []string
	for _, r := range records {
		t := r.TypeOrEmpty()
		if t == "" {
			t = UnknownType
		}
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}
