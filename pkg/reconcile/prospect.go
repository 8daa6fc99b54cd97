package reconcile

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

// Prospect is the per-key candidate awaiting resolution. At least one of
// NewValue and ExistingValue is set.
type Prospect struct {
	// Source comes from the generated side when both sides carry one.
	Source        *schema.Unit
	NewValue      *string
	ExistingValue *string
	Key           string
}

// Generated reports whether the key was produced by this run.
func (p Prospect) Generated() bool { return p.NewValue != nil }

// Persisted reports whether the key exists in the persisted file.
func (p Prospect) Persisted() bool { return p.ExistingValue != nil }

// Unmatched reports whether the key exists only in the persisted file.
func (p Prospect) Unmatched() bool { return p.NewValue == nil && p.ExistingValue != nil }

// Prospects builds the union of keys of generated and existing, sorted by key.
func Prospects(generated, existing translation.Map) []Prospect {
	index := make(map[string]int, len(generated)+len(existing))
	var out []Prospect

	at := func(key string) *Prospect {
		if i, ok := index[key]; ok {
			return &out[i]
		}
		index[key] = len(out)
		out = append(out, Prospect{Key: key})
		return &out[len(out)-1]
	}

	// Existing first so that the generated source overrides it.
	for _, key := range translation.Keys(existing) {
		t := existing[key]
		p := at(key)
		p.ExistingValue = &t.Value
		p.Source = t.Source
	}
	for _, key := range translation.Keys(generated) {
		t := generated[key]
		p := at(key)
		p.NewValue = &t.Value
		if t.Source != nil {
			p.Source = t.Source
		}
	}

	slices.SortFunc(out, func(a, b Prospect) int { return strings.Compare(a.Key, b.Key) })
	return out
}
