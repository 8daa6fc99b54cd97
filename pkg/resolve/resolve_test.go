package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nsync/pkg/naming"
	"github.com/dmitrymomot/i18nsync/pkg/resolve"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

var (
	color   = schema.Unit{ID: "Color", Name: "Color", Shape: schema.Enum{Options: []string{"RED", "GREEN"}}}
	payment = schema.Unit{ID: "Payment", Name: "Payment", Shape: schema.OneOf{Properties: []string{"card", "bankAccount"}}}
	pet     = schema.Unit{ID: "Pet", Name: "Pet", Shape: schema.Interface{Members: []string{"Dog"}}}
	plain   = schema.Unit{ID: "Invoice", Name: "Invoice"}
)

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		unit schema.Unit
		want string
	}{
		{color, "enum.Color"},
		{payment, "oneOf.Payment"},
		{pet, "interface.Pet"},
	}
	for _, tt := range tests {
		got, ok := resolve.DefaultPath(tt.unit)
		require.True(t, ok, tt.unit.Name)
		require.Equal(t, tt.want, got)
	}

	_, ok := resolve.DefaultPath(plain)
	require.False(t, ok)
}

func TestPath(t *testing.T) {
	t.Parallel()

	t.Run("custom getter wins", func(t *testing.T) {
		t.Parallel()
		getter := func(u schema.Unit) (string, bool) { return "custom." + u.Name, true }
		got, ok := resolve.Path(color, getter, "base")
		require.True(t, ok)
		require.Equal(t, "custom.Color", got)
	})

	t.Run("custom getter may skip", func(t *testing.T) {
		t.Parallel()
		getter := func(schema.Unit) (string, bool) { return "", false }
		_, ok := resolve.Path(color, getter, "")
		require.False(t, ok)
	})

	t.Run("literal base path", func(t *testing.T) {
		t.Parallel()
		got, ok := resolve.Path(color, nil, "labels")
		require.True(t, ok)
		require.Equal(t, "labels", got)
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()
		got, ok := resolve.Path(payment, nil, "")
		require.True(t, ok)
		require.Equal(t, "oneOf.Payment", got)
	})
}

func TestDefaultWriter(t *testing.T) {
	t.Parallel()

	write := resolve.DefaultWriter(naming.New())

	t.Run("title-cases members", func(t *testing.T) {
		t.Parallel()
		out, ok := write(color, "enum.Color", nil)
		require.True(t, ok)
		require.Len(t, out, 2)
		require.Equal(t, "enum.Color.RED", out[0].Key)
		require.Equal(t, "Red", out[0].Value)
		require.Equal(t, "enum.Color.GREEN", out[1].Key)
		require.Equal(t, "Green", out[1].Value)
		require.NotNil(t, out[0].Source)
		require.Equal(t, "Color", out[0].Source.Name)
	})

	t.Run("reuses recorded values", func(t *testing.T) {
		t.Parallel()
		existing := translation.FromValues(map[string]string{"oneOf.Payment.card": "Carte"})
		out, ok := write(payment, "oneOf.Payment", existing)
		require.True(t, ok)
		require.Equal(t, "Carte", out[0].Value)
		require.Equal(t, "Bank Account", out[1].Value)
	})

	t.Run("skips empty member names", func(t *testing.T) {
		t.Parallel()
		u := schema.Unit{Name: "C", Shape: schema.Enum{Options: []string{"", "A"}}}
		out, ok := write(u, "enum.C", nil)
		require.True(t, ok)
		require.Len(t, out, 1)
		require.Equal(t, "enum.C.A", out[0].Key)
	})

	t.Run("skips units without kind", func(t *testing.T) {
		t.Parallel()
		out, ok := write(plain, "x", nil)
		require.False(t, ok)
		require.Nil(t, out)
	})

	t.Run("nil caser uses defaults", func(t *testing.T) {
		t.Parallel()
		out, ok := resolve.DefaultWriter(nil)(pet, "interface.Pet", nil)
		require.True(t, ok)
		require.Equal(t, "Dog", out[0].Value)
	})
}

func TestDefaultNamespace(t *testing.T) {
	t.Parallel()

	path, ok := resolve.DefaultNamespacePath(plain, "fr")
	require.True(t, ok)
	require.Equal(t, "fr.Invoice", path)

	write := resolve.DefaultNamespaceWriter(nil)
	out, ok := write(plain, "fr", path, nil)
	require.True(t, ok)
	require.Equal(t, []string{"fr.Invoice"}, []string{out[0].Key})
	require.Equal(t, "Invoice", out[0].Value)

	out, _ = write(plain, "fr", path, translation.FromValues(map[string]string{"fr.Invoice": "Facture"}))
	require.Equal(t, "Facture", out[0].Value)

	_, ok = resolve.DefaultNamespacePath(schema.Unit{}, "fr")
	require.False(t, ok)
}
