package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/guregu/null.v3"
)

// Raw info keys, in lookup priority order.
var (
	modelIDKeys  = []string{"modelId", "model_id"}
	sizeKeys     = []string{"file_size", "fileSize", "size"}
	lastUsedKeys = []string{"lastUsed", "last_accessed"}
	typeKeys     = []string{"model_type"}
	updateKeys   = []string{"update_available", "updateAvailable", "has_update", "hasUpdate"}
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewInfo validates a raw attribute bag. Malformed values become invalid
// fields instead of errors.
func NewInfo(raw map[string]any) Info {
	info := Info{Extra: make(map[string]any)}
	consumed := make(map[string]bool)

	// first returns the first non-nil value among keys and marks every
	// present alias as consumed.
	first := func(keys []string) (any, bool) {
		var found any
		for _, k := range keys {
			v, ok := raw[k]
			if !ok {
				continue
			}
			consumed[k] = true
			if found == nil && v != nil {
				found = v
			}
		}
		return found, found != nil
	}

	if v, ok := first(modelIDKeys); ok {
		info.ModelID = parseID(v)
	}
	if v, ok := raw["name"]; ok {
		consumed["name"] = true
		info.Name = parseString(v)
	}
	if m, ok := raw["model"].(map[string]any); ok {
		consumed["model"] = true
		info.ModelName = parseString(m["name"])
		info.ModelType = parseString(m["type"])
		for k := range m {
			if k != "name" && k != "type" {
				info.Extra["model"] = m
				break
			}
		}
	}
	if v, ok := first(typeKeys); ok && !info.ModelType.Valid {
		info.ModelType = parseString(v)
	}
	for _, k := range sizeKeys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		consumed[k] = true
		if s := ParseSize(v); s.Valid && !info.FileSize.Valid {
			info.FileSize = s
		}
	}
	if v, ok := first(lastUsedKeys); ok {
		info.LastUsed = ParseTime(v)
	}
	if v, ok := first(updateKeys); ok {
		info.UpdateAvailable = ParseBool(v)
	}

	for k, v := range raw {
		if !consumed[k] {
			info.Extra[k] = v
		}
	}
	if len(info.Extra) == 0 {
		info.Extra = nil
	}
	return info
}

// ParseHash validates a raw hash value.
func ParseHash(v any) null.String {
	s := parseString(v)
	if !s.Valid || s.String == UnknownValue {
		return null.String{}
	}
	return s
}

func parseString(v any) null.String {
	switch x := v.(type) {
	case string:
		x = strings.TrimSpace(x)
		return null.NewString(x, x != "")
	case json.Number:
		return null.StringFrom(x.String())
	case float64:
		return null.StringFrom(strconv.FormatFloat(x, 'f', -1, 64))
	case int:
		return null.StringFrom(strconv.Itoa(x))
	case int64:
		return null.StringFrom(strconv.FormatInt(x, 10))
	}
	return null.String{}
}

func parseID(v any) null.String {
	s := parseString(v)
	if !s.Valid || s.String == UnknownValue {
		return null.String{}
	}
	return s
}

// ParseSize parses a byte count from a number or numeric string. NaN,
// infinities and values <= 0 are treated as absent.
func ParseSize(v any) null.Int {
	var f float64
	switch x := v.(type) {
	case json.Number:
		var err error
		if f, err = x.Float64(); err != nil {
			return null.Int{}
		}
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
			return null.Int{}
		}
	default:
		return null.Int{}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return null.Int{}
	}
	return null.IntFrom(int64(f))
}

// ParseTime accepts ISO-like timestamp strings and unix seconds or
// milliseconds.
func ParseTime(v any) null.Time {
	switch x := v.(type) {
	case string:
		x = strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return null.TimeFrom(t.UTC())
			}
		}
		if n, err := strconv.ParseFloat(x, 64); err == nil {
			return unixTime(n)
		}
	case json.Number:
		if n, err := x.Float64(); err == nil {
			return unixTime(n)
		}
	case float64:
		return unixTime(x)
	case int64:
		return unixTime(float64(x))
	}
	return null.Time{}
}

func unixTime(n float64) null.Time {
	if math.IsNaN(n) || n <= 0 {
		return null.Time{}
	}
	if n >= 1e12 {
		return null.TimeFrom(time.UnixMilli(int64(n)).UTC())
	}
	return null.TimeFrom(time.Unix(int64(n), 0).UTC())
}

// ParseBool interprets boolean-like values.
func ParseBool(v any) null.Bool {
	switch x := v.(type) {
	case bool:
		return null.BoolFrom(x)
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "1", "y":
			return null.BoolFrom(true)
		case "false", "no", "0", "n", "":
			return null.BoolFrom(false)
		}
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return null.BoolFrom(f != 0)
		}
	case float64:
		return null.BoolFrom(x != 0)
	case int:
		return null.BoolFrom(x != 0)
	}
	return null.Bool{}
}

// String implements fmt.Stringer for debugging output.
func (r ModelRecord) String() string {
	return fmt.Sprintf("%s (%s)", r.DisplayName(), r.FilePath)
}
