package reconcile

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

type unmatchedMode int

const (
	unmatchedKeep unmatchedMode = iota
	unmatchedRemove
	unmatchedCustom
)

// Unmatched is the policy for keys found in a persisted file but no longer
// produced from the schema. The zero value is Keep.
type Unmatched struct {
	fn   func(Prospect) (*translation.Translation, error)
	mode unmatchedMode
}

// Keep passes unmatched keys to the conflict handler, which retains them by default.
func Keep() Unmatched { return Unmatched{mode: unmatchedKeep} }

// Remove silently drops unmatched keys.
func Remove() Unmatched { return Unmatched{mode: unmatchedRemove} }

// Custom resolves unmatched keys with fn. Returning nil drops the key.
// A nil fn behaves like Keep.
func Custom(fn func(Prospect) (*translation.Translation, error)) Unmatched {
	if fn == nil {
		return Keep()
	}
	return Unmatched{mode: unmatchedCustom, fn: fn}
}

// String returns "keep", "remove" or "custom".
func (u Unmatched) String() string {
	switch u.mode {
	case unmatchedRemove:
		return "remove"
	case unmatchedCustom:
		return "custom"
	default:
		return "keep"
	}
}

// ParseUnmatched converts "keep" (or empty) and "remove" into a policy.
func ParseUnmatched(s string) (Unmatched, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return Keep(), nil
	case "remove":
		return Remove(), nil
	default:
		return Unmatched{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
