package midgard

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// decodeInterval decodes one Midgard interval into T. Midgard encodes every
// number as a JSON string; those are turned back into numbers first.
func decodeInterval[T any](raw json.RawMessage) (T, error) {
	var out T

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return out, err
	}

	normalized, err := json.Marshal(normalize(generic))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(normalized, &out); err != nil {
		return out, err
	}
	return out, nil
}

// normalize walks a decoded JSON value and replaces numeric strings with
// numbers. Midgard's "NaN" and values that overflow to infinity become 0.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	case string:
		return numeric(t)
	default:
		return v
	}
}

func numeric(s string) any {
	if s == "" {
		return s
	}
	if s == "NaN" {
		return json.Number("0")
	}
	if c := s[0]; c != '-' && c != '+' && c != '.' && (c < '0' || c > '9') {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Number("0")
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return json.Number(strconv.FormatInt(i, 10))
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
}
