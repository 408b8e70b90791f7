package neo4j

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// toProps flattens a record into a Neo4j property map using its JSON field
// names. Whole numbers become int64 and everything else float64; keys listed
// in skip are left out.
func toProps(v any, skip ...string) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	for _, key := range skip {
		delete(fields, key)
	}
	for key, value := range fields {
		n, ok := value.(json.Number)
		if !ok {
			continue
		}
		if i, err := n.Int64(); err == nil {
			fields[key] = i
			continue
		}
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		fields[key] = f
	}
	return fields, nil
}

// fromProps rebuilds a record from a node's property map.
func fromProps[T any](props map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(props)
	if err != nil {
		return out, fmt.Errorf("encode properties: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode properties: %w", err)
	}
	return out, nil
}
