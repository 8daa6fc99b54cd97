package reconcile

import (
	"fmt"

	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

// Handler resolves a prospect whose sides differ or where only one side is
// present. Returning nil drops the key. Handlers receive every prospect of
// the file so they can take siblings into account; they must not mutate them.
type Handler func(p Prospect, all []Prospect) (*translation.Translation, error)

// DefaultHandler prefers the persisted value whenever there is one, so human
// edits always win over a freshly generated default. Otherwise it accepts the
// generated value.
func DefaultHandler(p Prospect, _ []Prospect) (*translation.Translation, error) {
	switch {
	case p.ExistingValue != nil:
		return &translation.Translation{Key: p.Key, Value: *p.ExistingValue, Source: p.Source}, nil
	case p.NewValue != nil:
		return &translation.Translation{Key: p.Key, Value: *p.NewValue, Source: p.Source}, nil
	default:
		return nil, nil
	}
}

// Decision describes how a prospect was resolved.
type Decision int

const (
	// DecisionUnchanged: both sides agreed.
	DecisionUnchanged Decision = iota
	// DecisionAdded: a generated key without persisted value was accepted.
	DecisionAdded
	// DecisionPreserved: the persisted value won over a different generated one.
	DecisionPreserved
	// DecisionRetained: a key missing from the schema was kept.
	DecisionRetained
	// DecisionReplaced: the result overrides the persisted value or comes from neither side.
	DecisionReplaced
	// DecisionDropped: the key was removed from the output.
	DecisionDropped
)

func (d Decision) String() string {
	switch d {
	case DecisionUnchanged:
		return "unchanged"
	case DecisionAdded:
		return "added"
	case DecisionPreserved:
		return "preserved"
	case DecisionRetained:
		return "retained"
	case DecisionReplaced:
		return "replaced"
	case DecisionDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Stats counts decisions of one reconciliation.
type Stats struct {
	Unchanged int `json:"unchanged"`
	Added     int `json:"added"`
	Preserved int `json:"preserved"`
	Retained  int `json:"retained"`
	Replaced  int `json:"replaced"`
	Dropped   int `json:"dropped"`
}

func (s *Stats) record(d Decision) {
	switch d {
	case DecisionUnchanged:
		s.Unchanged++
	case DecisionAdded:
		s.Added++
	case DecisionPreserved:
		s.Preserved++
	case DecisionRetained:
		s.Retained++
	case DecisionReplaced:
		s.Replaced++
	case DecisionDropped:
		s.Dropped++
	}
}

// Observer is notified of every decision. t is nil for dropped keys.
type Observer func(p Prospect, d Decision, t *translation.Translation)

type config struct {
	handler   Handler
	observer  Observer
	unmatched Unmatched
}

// Option configures Reconcile.
type Option func(*config)

// WithHandler replaces DefaultHandler.
func WithHandler(h Handler) Option {
	return func(c *config) {
		if h != nil {
			c.handler = h
		}
	}
}

// WithUnmatched sets the policy for keys present only in the persisted file.
func WithUnmatched(u Unmatched) Option {
	return func(c *config) {
		c.unmatched = u
	}
}

// WithObserver registers a decision observer.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// Reconcile merges the generated translations of a file into its persisted ones.
//
// Keys whose sides agree are kept untouched. Keys present only in existing go
// through the unmatched policy first (Keep delegates to the handler). Every
// other key is resolved by the handler. Handler errors abort the merge.
func Reconcile(generated, existing translation.Map, opts ...Option) (translation.Map, Stats, error) {
	cfg := &config{handler: DefaultHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	var stats Stats
	prospects := Prospects(generated, existing)
	out := make(translation.Map, len(prospects))

	for _, p := range prospects {
		t, err := cfg.resolve(p, prospects)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("%w: key %q: %w", ErrHandler, p.Key, err)
		}

		d := classify(p, t)
		stats.record(d)
		if cfg.observer != nil {
			cfg.observer(p, d, t)
		}
		if t == nil {
			continue
		}
		if t.Key == "" {
			t.Key = p.Key
		}
		out[t.Key] = *t
	}

	return out, stats, nil
}

func (c *config) resolve(p Prospect, all []Prospect) (*translation.Translation, error) {
	if p.NewValue != nil && p.ExistingValue != nil && *p.NewValue == *p.ExistingValue {
		return &translation.Translation{Key: p.Key, Value: *p.NewValue, Source: p.Source}, nil
	}
	if p.Unmatched() {
		switch c.unmatched.mode {
		case unmatchedRemove:
			return nil, nil
		case unmatchedCustom:
			return c.unmatched.fn(p)
		case unmatchedKeep:
		}
	}
	return c.handler(p, all)
}

func classify(p Prospect, t *translation.Translation) Decision {
	if t == nil {
		return DecisionDropped
	}
	switch {
	case p.NewValue != nil && p.ExistingValue != nil && *p.NewValue == *p.ExistingValue && t.Value == *p.NewValue:
		return DecisionUnchanged
	case p.ExistingValue != nil && t.Value == *p.ExistingValue:
		if p.NewValue == nil {
			return DecisionRetained
		}
		return DecisionPreserved
	case p.NewValue != nil && t.Value == *p.NewValue && p.ExistingValue == nil:
		return DecisionAdded
	default:
		return DecisionReplaced
	}
}
