/*
Copyright 2024 The freqtrade-operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
)

// computeConfigHash canonicalizes data (recursively sorting object keys,
// preserving array order) and hashes the result, so that semantically
// identical ConfigMap data always hashes the same regardless of map
// iteration order.
func computeConfigHash(data map[string]string) (string, error) {
	sorted := sortJSON(data)

	canonical, err := json.Marshal(sorted)
	if err != nil {
		return "", fmt.Errorf("canonicalizing config data: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return fmt.Sprintf("%x", sum), nil
}

// sortJSON recursively rebuilds the value as a tree of sortedObject/slices
// so json.Marshal always emits object keys in sorted order.
func sortJSON(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]string:
		m := make(map[string]interface{}, len(val))
		for k, s := range val {
			m[k] = parseIfJSON(s)
		}
		return sortJSON(m)
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := sortedObject{}
		for _, k := range keys {
			out = append(out, sortedField{key: k, value: sortJSON(val[k])})
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = sortJSON(e)
		}
		return out
	default:
		return val
	}
}

// parseIfJSON decodes s as a JSON value when it parses cleanly (config.json
// is always JSON), so key order inside it can be canonicalized too. Values
// that aren't JSON at all (strategy.py, model.py source) are hashed as the
// opaque strings they are.
func parseIfJSON(s string) interface{} {
	var parsed interface{}
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return s
	}
	return parsed
}

type sortedField struct {
	key   string
	value interface{}
}

// sortedObject marshals as a JSON object with fields in the order they were
// appended, which sortJSON always produces sorted by key.
type sortedObject []sortedField

func (o sortedObject) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, f := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return buf, nil
}
