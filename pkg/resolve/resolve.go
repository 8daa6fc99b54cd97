package resolve

import (
	"github.com/dmitrymomot/i18nsync/pkg/naming"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

// PathGetter returns the flat path under which a unit's translations live.
// The second result is false when the unit has no path in the file.
type PathGetter func(u schema.Unit) (string, bool)

// Writer produces the candidate translations of a unit stored at path.
// existing holds the file's persisted translations and lets a writer reuse
// recorded values. The second result is false for units the writer does not handle.
type Writer func(u schema.Unit, path string, existing translation.Map) ([]translation.Translation, bool)

// Path resolves the path of u: the custom getter when set, otherwise the
// literal base path when set, otherwise DefaultPath.
func Path(u schema.Unit, getter PathGetter, basePath string) (string, bool) {
	switch {
	case getter != nil:
		return getter(u)
	case basePath != "":
		return basePath, true
	default:
		return DefaultPath(u)
	}
}

// DefaultPath derives the path from the unit's structural kind and name:
// "enum.Color", "oneOf.Payment", "interface.Pet".
// Units without a recognized kind have no path.
func DefaultPath(u schema.Unit) (string, bool) {
	switch u.Shape.(type) {
	case schema.Enum, *schema.Enum,
		schema.OneOf, *schema.OneOf,
		schema.Interface, *schema.Interface:
		return join(u.Kind().String(), u.Name), true
	default:
		return "", false
	}
}

// DefaultWriter emits one translation per member at "<path>.<member>".
// A value already recorded for the member is reused as is; otherwise the
// title-cased member name is used. Empty member names are skipped.
func DefaultWriter(caser *naming.Caser) Writer {
	if caser == nil {
		caser = naming.New()
	}
	return func(u schema.Unit, path string, existing translation.Map) ([]translation.Translation, bool) {
		if u.Kind() == schema.KindNone {
			return nil, false
		}

		members := u.Members()
		source := u
		out := make([]translation.Translation, 0, len(members))
		for _, member := range members {
			if member == "" {
				continue
			}
			key := join(path, member)
			value := caser.Title(member)
			if prev, ok := existing[key]; ok {
				value = prev.Value
			}
			out = append(out, translation.Translation{Key: key, Value: value, Source: &source})
		}
		return out, true
	}
}

// NamespacePathGetter resolves paths for the catch-all namespace of one language.
type NamespacePathGetter func(u schema.Unit, lang string) (string, bool)

// NamespaceWriter produces the catch-all translation of a unit for one language.
type NamespaceWriter func(u schema.Unit, lang, path string, existing translation.Map) ([]translation.Translation, bool)

// DefaultNamespacePath returns "<lang>.<unit name>".
func DefaultNamespacePath(u schema.Unit, lang string) (string, bool) {
	if u.Name == "" {
		return "", false
	}
	return join(lang, u.Name), true
}

// DefaultNamespaceWriter emits a single translation holding the title-cased
// unit name, reusing a recorded value when present.
func DefaultNamespaceWriter(caser *naming.Caser) NamespaceWriter {
	if caser == nil {
		caser = naming.New()
	}
	return func(u schema.Unit, _ string, path string, existing translation.Map) ([]translation.Translation, bool) {
		value := caser.Title(u.Name)
		if prev, ok := existing[path]; ok {
			value = prev.Value
		}
		source := u
		return []translation.Translation{{Key: path, Value: value, Source: &source}}, true
	}
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + translation.Separator + name
}
