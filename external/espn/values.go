package espn

import (
	"math"
	"strconv"
	"strings"
)

// Provider payloads are decoded into map[string]any; these accessors tolerate
// missing keys and the string/number drift the provider shows across sports.

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	return asString(src[key])
}

func asString(raw any) string {
	switch typed := raw.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return formatNumber(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func getInt(src map[string]any, key string) int {
	return int(asFloat64(lookupMapValue(src, key)))
}

func getFloat(src map[string]any, key string) (float64, bool) {
	raw := lookupMapValue(src, key)
	if raw == nil {
		return 0, false
	}
	return parseNumber(raw)
}

func getBool(src map[string]any, key string, fallback bool) bool {
	raw, ok := src[key]
	if !ok || raw == nil {
		return fallback
	}
	switch typed := raw.(type) {
	case bool:
		return typed
	case string:
		v, err := strconv.ParseBool(strings.TrimSpace(typed))
		if err != nil {
			return fallback
		}
		return v
	default:
		return fallback
	}
}

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	obj, _ := src[key].(map[string]any)
	return obj
}

func getSlice(src map[string]any, key string) []any {
	if src == nil {
		return nil
	}
	items, _ := src[key].([]any)
	return items
}

// getMaps returns the object elements of a list, ignoring anything else.
func getMaps(src map[string]any, key string) []map[string]any {
	items := getSlice(src, key)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func getPath(src map[string]any, keys ...string) map[string]any {
	current := src
	for _, key := range keys {
		current = getMap(current, key)
		if current == nil {
			return nil
		}
	}
	return current
}

func getStringSlice(src map[string]any, key string) []string {
	items := getSlice(src, key)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, asString(item))
	}
	return out
}

func lookupMapValue(src map[string]any, key string) any {
	if src == nil {
		return nil
	}
	return src[key]
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}

func asFloat64(value any) float64 {
	v, _ := parseNumber(value)
	return v
}

// parseNumber reads numbers, numeric strings ("+150", "o47.5") and {"value": x} wrappers.
func parseNumber(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return finite(typed)
	case float32:
		return finite(float64(typed))
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		text := strings.TrimLeft(strings.TrimSpace(typed), "ouOU")
		if strings.EqualFold(text, "even") {
			return 100, true
		}
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return finite(parsed)
	case map[string]any:
		for _, key := range []string{"value", "american", "displayValue"} {
			if nested, ok := typed[key]; ok {
				if v, ok := parseNumber(nested); ok {
					return v, true
				}
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ptrString(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}

func ptrFloat(value float64) *float64 {
	v := value
	return &v
}
