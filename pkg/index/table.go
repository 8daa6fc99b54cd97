package index

import (
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/dmitrymomot/i18nsync/pkg/naming"
)

// File describes one generated resource file that ended up with content.
type File struct {
	// Path is the storage name of the file, e.g. "public/locales/en/common.json".
	Path     string
	Language string
	// Namespace overrides the name derived from the file name.
	Namespace string
}

// Namespace returns the explicit namespace of f, or the camel-cased file
// name without extension ("enum-labels.json" becomes "enumLabels").
func Namespace(f File) string {
	if f.Namespace != "" {
		return f.Namespace
	}
	base := path.Base(strings.ReplaceAll(f.Path, "\\", "/"))
	return naming.Camel(strings.TrimSuffix(base, path.Ext(base)))
}

// Identifier returns the variable name a resource file is imported under:
// ("en", "common") gives "enCommonNs".
func Identifier(lang, namespace string) string {
	return naming.Camel(lang + " " + namespace + " Ns")
}

// Table maps language to namespace to a resource expression. Generated
// entries hold import identifiers; static entries hold whatever expression
// the caller supplied.
type Table map[string]map[string]string

// Set stores expr at (lang, namespace).
func (t Table) Set(lang, namespace, expr string) {
	ns, ok := t[lang]
	if !ok {
		ns = make(map[string]string)
		t[lang] = ns
	}
	ns[namespace] = expr
}

// Get returns the expression stored at (lang, namespace).
func (t Table) Get(lang, namespace string) (string, bool) {
	expr, ok := t[lang][namespace]
	return expr, ok
}

// Languages returns the languages of t in lexical order.
func (t Table) Languages() []string {
	return slices.Sorted(maps.Keys(t))
}

// Namespaces returns the namespaces of lang in lexical order.
func (t Table) Namespaces(lang string) []string {
	return slices.Sorted(maps.Keys(t[lang]))
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for lang, ns := range t {
		out[lang] = maps.Clone(ns)
	}
	return out
}

// Build groups files into a generated table and merges it over static.
// For a (language, namespace) pair present on both sides the generated
// identifier wins. Pairs with an empty expression are omitted.
func Build(files []File, static Table) Table {
	out := make(Table)
	for lang, ns := range static {
		for name, expr := range ns {
			if expr != "" {
				out.Set(lang, name, expr)
			}
		}
	}
	for _, f := range files {
		ns := Namespace(f)
		out.Set(f.Language, ns, Identifier(f.Language, ns))
	}
	return out
}
