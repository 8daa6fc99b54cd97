package translation

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/i18nsync/pkg/schema"
)

// Separator joins the segments of a flat path.
const Separator = "."

// Translation is one leaf of a resource file addressed by its flat path.
type Translation struct {
	// Source is the schema unit the translation was generated from.
	// Nil for translations read back from persisted content.
	Source *schema.Unit
	Key    string
	Value  string
}

// Map is the flat representation of one resource file, keyed by path.
type Map map[string]Translation

// Keys returns the paths of m in ascending order.
func Keys(m Map) []string {
	return slices.Sorted(maps.Keys(m))
}

// Set stores t under its own key.
func (m Map) Set(t Translation) {
	m[t.Key] = t
}

// Values returns the flat path → value view of m.
func (m Map) Values() map[string]string {
	out := make(map[string]string, len(m))
	for k, t := range m {
		out[k] = t.Value
	}
	return out
}

// FromValues builds a Map without source annotations.
func FromValues(values map[string]string) Map {
	m := make(Map, len(values))
	for k, v := range values {
		m[k] = Translation{Key: k, Value: v}
	}
	return m
}
