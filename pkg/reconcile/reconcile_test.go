package reconcile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nsync/pkg/reconcile"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

func values(m map[string]string) translation.Map { return translation.FromValues(m) }

func TestProspects(t *testing.T) {
	t.Parallel()

	unit := &schema.Unit{Name: "Color"}
	generated := translation.Map{
		"b": {Key: "b", Value: "new-b", Source: unit},
		"c": {Key: "c", Value: "new-c", Source: unit},
	}
	existing := values(map[string]string{"a": "old-a", "b": "old-b"})

	ps := reconcile.Prospects(generated, existing)
	require.Len(t, ps, 3)

	require.Equal(t, "a", ps[0].Key)
	require.Nil(t, ps[0].NewValue)
	require.Equal(t, "old-a", *ps[0].ExistingValue)
	require.True(t, ps[0].Unmatched())
	require.Nil(t, ps[0].Source)

	require.Equal(t, "b", ps[1].Key)
	require.Equal(t, "new-b", *ps[1].NewValue)
	require.Equal(t, "old-b", *ps[1].ExistingValue)
	require.Same(t, unit, ps[1].Source)

	require.Equal(t, "c", ps[2].Key)
	require.True(t, ps[2].Generated())
	require.False(t, ps[2].Persisted())
}

func TestReconcile_DefaultPolicy(t *testing.T) {
	t.Parallel()

	generated := values(map[string]string{
		"same":    "Same",
		"edited":  "Generated",
		"new":     "New",
		"another": "Another",
	})
	existing := values(map[string]string{
		"same":   "Same",
		"edited": "Edited by translator",
		"stale":  "Stale",
	})

	out, stats, err := reconcile.Reconcile(generated, existing)
	require.NoError(t, err)

	t.Run("human edits are preserved", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Edited by translator", out["edited"].Value)
	})

	t.Run("new keys are accepted", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "New", out["new"].Value)
		require.Equal(t, "Another", out["another"].Value)
	})

	t.Run("stale keys are retained", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Stale", out["stale"].Value)
	})

	t.Run("equal keys are unchanged", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Same", out["same"].Value)
	})

	t.Run("stats", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, reconcile.Stats{
			Unchanged: 1,
			Added:     2,
			Preserved: 1,
			Retained:  1,
		}, stats)
	})
}

func TestReconcile_Unmatched(t *testing.T) {
	t.Parallel()

	generated := values(map[string]string{"enum.Color.RED": "Red"})
	existing := values(map[string]string{
		"enum.Color.RED":   "Rouge",
		"enum.Removed.FOO": "Bar",
	})

	t.Run("keep retains orphans", func(t *testing.T) {
		t.Parallel()
		out, _, err := reconcile.Reconcile(generated, existing, reconcile.WithUnmatched(reconcile.Keep()))
		require.NoError(t, err)
		require.Equal(t, map[string]string{
			"enum.Color.RED":   "Rouge",
			"enum.Removed.FOO": "Bar",
		}, out.Values())
	})

	t.Run("remove drops orphans", func(t *testing.T) {
		t.Parallel()
		out, stats, err := reconcile.Reconcile(generated, existing, reconcile.WithUnmatched(reconcile.Remove()))
		require.NoError(t, err)
		require.Equal(t, map[string]string{"enum.Color.RED": "Rouge"}, out.Values())
		require.Equal(t, 1, stats.Dropped)
	})

	t.Run("custom transforms orphans", func(t *testing.T) {
		t.Parallel()
		custom := reconcile.Custom(func(p reconcile.Prospect) (*translation.Translation, error) {
			return &translation.Translation{Key: "deprecated." + p.Key, Value: *p.ExistingValue}, nil
		})
		out, stats, err := reconcile.Reconcile(generated, existing, reconcile.WithUnmatched(custom))
		require.NoError(t, err)
		require.Equal(t, map[string]string{
			"enum.Color.RED":              "Rouge",
			"deprecated.enum.Removed.FOO": "Bar",
		}, out.Values())
		require.Equal(t, 1, stats.Retained)
	})

	t.Run("custom errors abort", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		custom := reconcile.Custom(func(reconcile.Prospect) (*translation.Translation, error) {
			return nil, boom
		})
		_, _, err := reconcile.Reconcile(generated, existing, reconcile.WithUnmatched(custom))
		require.ErrorIs(t, err, boom)
		require.ErrorIs(t, err, reconcile.ErrHandler)
	})
}

func TestReconcile_Handler(t *testing.T) {
	t.Parallel()

	t.Run("custom handler can prefer generated values", func(t *testing.T) {
		t.Parallel()
		preferNew := func(p reconcile.Prospect, _ []reconcile.Prospect) (*translation.Translation, error) {
			if p.NewValue != nil {
				return &translation.Translation{Key: p.Key, Value: *p.NewValue}, nil
			}
			return nil, nil
		}
		out, stats, err := reconcile.Reconcile(
			values(map[string]string{"a": "new"}),
			values(map[string]string{"a": "old", "b": "stale"}),
			reconcile.WithHandler(preferNew),
		)
		require.NoError(t, err)
		require.Equal(t, map[string]string{"a": "new"}, out.Values())
		require.Equal(t, reconcile.Stats{Replaced: 1, Dropped: 1}, stats)
	})

	t.Run("handler is not called for equal sides", func(t *testing.T) {
		t.Parallel()
		called := false
		h := func(p reconcile.Prospect, _ []reconcile.Prospect) (*translation.Translation, error) {
			called = true
			return nil, nil
		}
		out, _, err := reconcile.Reconcile(
			values(map[string]string{"a": "x"}),
			values(map[string]string{"a": "x"}),
			reconcile.WithHandler(h),
		)
		require.NoError(t, err)
		require.False(t, called)
		require.Equal(t, "x", out["a"].Value)
	})

	t.Run("handler sees all prospects", func(t *testing.T) {
		t.Parallel()
		var seen int
		h := func(p reconcile.Prospect, all []reconcile.Prospect) (*translation.Translation, error) {
			seen = len(all)
			return reconcile.DefaultHandler(p, all)
		}
		_, _, err := reconcile.Reconcile(values(map[string]string{"a": "1", "b": "2"}), nil, reconcile.WithHandler(h))
		require.NoError(t, err)
		require.Equal(t, 2, seen)
	})

	t.Run("handler errors abort", func(t *testing.T) {
		t.Parallel()
		h := func(reconcile.Prospect, []reconcile.Prospect) (*translation.Translation, error) {
			return nil, errors.New("invalid")
		}
		_, _, err := reconcile.Reconcile(values(map[string]string{"a": "1"}), nil, reconcile.WithHandler(h))
		require.ErrorIs(t, err, reconcile.ErrHandler)
		require.ErrorContains(t, err, `"a"`)
	})
}

func TestReconcile_Observer(t *testing.T) {
	t.Parallel()

	decisions := map[string]reconcile.Decision{}
	_, _, err := reconcile.Reconcile(
		values(map[string]string{"a": "1", "b": "2"}),
		values(map[string]string{"b": "edited", "c": "3"}),
		reconcile.WithUnmatched(reconcile.Remove()),
		reconcile.WithObserver(func(p reconcile.Prospect, d reconcile.Decision, _ *translation.Translation) {
			decisions[p.Key] = d
		}),
	)
	require.NoError(t, err)
	require.Equal(t, map[string]reconcile.Decision{
		"a": reconcile.DecisionAdded,
		"b": reconcile.DecisionPreserved,
		"c": reconcile.DecisionDropped,
	}, decisions)
	assert.Equal(t, "dropped", reconcile.DecisionDropped.String())
}

func TestReconcile_KeepsSource(t *testing.T) {
	t.Parallel()

	unit := &schema.Unit{Name: "Color"}
	generated := translation.Map{"enum.Color.RED": {Key: "enum.Color.RED", Value: "Red", Source: unit}}
	existing := values(map[string]string{"enum.Color.RED": "Red"})

	out, _, err := reconcile.Reconcile(generated, existing)
	require.NoError(t, err)
	require.Same(t, unit, out["enum.Color.RED"].Source)
}

func TestParseUnmatched(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"": "keep", "keep": "keep", "REMOVE": "remove"} {
		u, err := reconcile.ParseUnmatched(in)
		require.NoError(t, err)
		require.Equal(t, want, u.String())
	}

	_, err := reconcile.ParseUnmatched("archive")
	require.ErrorIs(t, err, reconcile.ErrUnknownPolicy)
	require.Equal(t, "keep", reconcile.Custom(nil).String())
}
