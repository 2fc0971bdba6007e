package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Settings is the insertFilename section of a configuration file. Values keep
// the shape their format decoded them into; the getters coerce on read so a
// "true" from an INI file and a true from JSON read the same.
type Settings struct {
	values *orderedmap.OrderedMap
}

func newSettings() *Settings {
	return &Settings{values: orderedmap.New()}
}

// Set stores a raw value under key.
func (s *Settings) Set(key string, v any) {
	s.values.Set(key, v)
}

// Has reports whether key was set by any source.
func (s *Settings) Has(key string) bool {
	_, ok := s.values.Get(key)
	return ok
}

// Keys returns the keys in the order they were read.
func (s *Settings) Keys() []string {
	return s.values.Keys()
}

func (s *Settings) Bool(key string, def bool) bool {
	v, ok := s.values.Get(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return def
		}
		return b
	default:
		return def
	}
}

func (s *Settings) String(key string, def string) string {
	v, ok := s.values.Get(key)
	if !ok {
		return def
	}
	if str, ok := v.(string); ok {
		return str
	}
	return def
}

// StringSlice accepts a list, or a comma separated string as written in INI
// files and environment variables.
func (s *Settings) StringSlice(key string, def []string) []string {
	v, ok := s.values.Get(key)
	if !ok {
		return def
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	case string:
		return splitList(val)
	default:
		return def
	}
}

// StringMap returns a copy of a mapping setting; missing or malformed
// mappings come back empty.
func (s *Settings) StringMap(key string) map[string]string {
	out := make(map[string]string)
	for _, kv := range s.orderedPairs(key) {
		out[kv[0]] = kv[1]
	}
	return out
}

// StringMapKeys returns the keys of a mapping setting in file order when the
// format preserves it, sorted otherwise.
func (s *Settings) StringMapKeys(key string) []string {
	pairs := s.orderedPairs(key)
	keys := make([]string, len(pairs))
	for i, kv := range pairs {
		keys[i] = kv[0]
	}
	return keys
}

func (s *Settings) orderedPairs(key string) [][2]string {
	v, ok := s.values.Get(key)
	if !ok {
		return nil
	}
	var pairs [][2]string
	if om := toOrderedMapPtr(v); om != nil {
		for _, k := range om.Keys() {
			raw, _ := om.Get(k)
			if str, ok := raw.(string); ok {
				pairs = append(pairs, [2]string{k, str})
			}
		}
		return pairs
	}
	switch m := v.(type) {
	case map[string]string:
		for k, str := range m {
			pairs = append(pairs, [2]string{k, str})
		}
	case map[string]any:
		for k, raw := range m {
			if str, ok := raw.(string); ok {
				pairs = append(pairs, [2]string{k, str})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

// toOrderedMapPtr converts both value and pointer types of OrderedMap to a pointer.
// Returns nil if the value is not an OrderedMap.
func toOrderedMapPtr(v any) *orderedmap.OrderedMap {
	switch val := v.(type) {
	case *orderedmap.OrderedMap:
		return val
	case orderedmap.OrderedMap:
		return &val
	default:
		return nil
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
