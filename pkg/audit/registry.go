package audit

import (
	"maps"
	"sync"

	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

// Provenance is the normalized description of the schema unit a translation
// was generated from.
type Provenance struct {
	Kind    string   `json:"kind"`
	Unit    string   `json:"unit"`
	Members []string `json:"members,omitempty"`
}

// Describe returns the provenance of u, or nil when u is nil.
func Describe(u *schema.Unit) *Provenance {
	if u == nil {
		return nil
	}
	members := u.Members()
	p := &Provenance{
		Kind: u.Kind().String(),
		Unit: u.QualifiedName(),
	}
	if len(members) > 0 {
		p.Members = append([]string(nil), members...)
	}
	return p
}

// Entry is one translation persisted during a run.
type Entry struct {
	Origin *Provenance `json:"origin,omitempty"`
	// Generated is the value the schema produced for the key in this run, if any.
	Generated *string `json:"generated,omitempty"`
	Key       string  `json:"key"`
	Language  string  `json:"language"`
	Namespace string  `json:"namespace"`
	Path      string  `json:"path"`
	Value     string  `json:"value"`
}

// State maps fully-qualified keys to the written entries.
type State map[string]Entry

// Key builds the fully-qualified key "lang:namespace:path".
func Key(lang, namespace, path string) string {
	return lang + ":" + namespace + ":" + path
}

// Registry accumulates every translation written during one run.
// It is owned by the run and safe for concurrent use.
type Registry struct {
	entries State
	mu      sync.Mutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(State)}
}

// Record stores t for the given file. generated is the schema-derived
// value of the key, nil when the key was not produced by the schema.
// Recording the same fully-qualified key twice keeps the last write.
func (r *Registry) Record(lang, namespace string, t translation.Translation, generated *string) {
	e := Entry{
		Key:       Key(lang, namespace, t.Key),
		Language:  lang,
		Namespace: namespace,
		Path:      t.Key,
		Value:     t.Value,
		Origin:    Describe(t.Source),
	}
	if generated != nil {
		g := *generated
		e.Generated = &g
	}

	r.mu.Lock()
	r.entries[e.Key] = e
	r.mu.Unlock()
}

// Len returns the number of recorded entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// State returns a snapshot of the recorded entries.
func (r *Registry) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.entries)
}
