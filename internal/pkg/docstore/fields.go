package docstore

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Fields is the field map of a document.
type Fields map[string]any

// Clone returns a shallow copy.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// String returns the field as a non-empty string.
func (f Fields) String(key string) (string, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// FirstString returns the first non-empty string among keys.
func (f Fields) FirstString(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := f.String(k); ok {
			return s, true
		}
	}
	return "", false
}

// Int64 returns the field as an integer, accepting every numeric
// representation a backend may decode into.
func (f Fields) Int64(key string) (int64, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return 0, false
	}
	return toInt64(v)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float32:
		return int64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if fl, err := n.Float64(); err == nil {
			return int64(fl), true
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		fl, err := n.Float64()
		return fl, err == nil
	}
	return 0, false
}

// equalValues compares two field values, treating all numeric types as one.
func equalValues(a, b any) bool {
	if af, ok := toFloat64(a); ok {
		bf, ok := toFloat64(b)
		return ok && af == bf
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return false
}

// compareValues orders missing < numbers < strings; numbers compare
// numerically and strings lexically.
func compareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case 1:
		af, _ := toFloat64(a)
		bf, _ := toFloat64(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
	case 2:
		return strings.Compare(a.(string), b.(string))
	}
	return 0
}

func rank(v any) int {
	if v == nil {
		return 0
	}
	if _, ok := toFloat64(v); ok {
		return 1
	}
	if _, ok := v.(string); ok {
		return 2
	}
	return 0
}
