package content

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// String returns the trimmed string at key. Non-string and blank values
// report false.
func String(fields map[string]any, key string) (string, bool) {
	value, ok := fields[key]
	if !ok || value == nil {
		return "", false
	}
	str, ok := value.(string)
	if !ok {
		return "", false
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return "", false
	}
	return str, true
}

// OptionalString keeps present-but-empty strings distinct from absent ones.
func OptionalString(fields map[string]any, key string) *string {
	value, ok := fields[key]
	if !ok || value == nil {
		return nil
	}
	str, ok := value.(string)
	if !ok {
		return nil
	}
	str = strings.TrimSpace(str)
	return &str
}

// Number coerces numeric values. Non-numeric values, including numeric
// strings, NaN and infinities, report false.
func Number(fields map[string]any, key string) (float64, bool) {
	value, ok := fields[key]
	if !ok || value == nil {
		return 0, false
	}
	var number float64
	switch typed := value.(type) {
	case float64:
		number = typed
	case float32:
		number = float64(typed)
	case int:
		number = float64(typed)
	case int8:
		number = float64(typed)
	case int16:
		number = float64(typed)
	case int32:
		number = float64(typed)
	case int64:
		number = float64(typed)
	case uint:
		number = float64(typed)
	case uint8:
		number = float64(typed)
	case uint16:
		number = float64(typed)
	case uint32:
		number = float64(typed)
	case uint64:
		number = float64(typed)
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		number = parsed
	default:
		return 0, false
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	return number, true
}

// Bool reads a boolean flag. Absent or blank values report false with no
// error. Values other than a bool or a strconv.ParseBool string are errors.
func Bool(fields map[string]any, key string) (bool, bool, error) {
	value, ok := fields[key]
	if !ok || value == nil {
		return false, false, nil
	}
	switch typed := value.(type) {
	case bool:
		return typed, true, nil
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return false, false, nil
		}
		parsed, err := strconv.ParseBool(trimmed)
		if err != nil {
			return false, false, fmt.Errorf("%s: unrecognised flag %q", key, typed)
		}
		return parsed, true, nil
	default:
		return false, false, fmt.Errorf("%s: unsupported flag value %T", key, value)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time parses timestamps written as YAML timestamps or strings in one of the
// accepted layouts. Zone-less values are UTC.
func Time(fields map[string]any, key string) (time.Time, bool, error) {
	value, ok := fields[key]
	if !ok || value == nil {
		return time.Time{}, false, nil
	}
	switch typed := value.(type) {
	case time.Time:
		return typed.UTC(), true, nil
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return time.Time{}, false, nil
		}
		parsed, err := ParseTime(trimmed)
		if err != nil {
			return time.Time{}, false, err
		}
		return parsed, true, nil
	default:
		return time.Time{}, false, fmt.Errorf("%s: unsupported date value %T", key, value)
	}
}

// ParseTime tries each accepted layout in turn.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}

// Strings accepts a list of strings or a comma separated string. Blank
// entries are dropped.
func Strings(fields map[string]any, key string) []string {
	var raw []string
	switch typed := fields[key].(type) {
	case []string:
		raw = typed
	case []any:
		for _, item := range typed {
			if str, ok := item.(string); ok {
				raw = append(raw, str)
			}
		}
	case string:
		raw = strings.Split(typed, ",")
	default:
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
