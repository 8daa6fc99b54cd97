package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nsync/pkg/storage"
)

func TestDir(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	d := storage.NewDir(root)

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := d.Read(ctx, "missing/common.json")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("write creates parents", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, d.Write(ctx, "en/nested/common.json", []byte("{}\n")))

		data, err := os.ReadFile(filepath.Join(root, "en", "nested", "common.json"))
		require.NoError(t, err)
		require.Equal(t, "{}\n", string(data))

		info, err := os.Stat(filepath.Join(root, "en", "nested", "common.json"))
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

		got, err := d.Read(ctx, "en/nested/common.json")
		require.NoError(t, err)
		require.Equal(t, "{}\n", string(got))
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, d.Write(ctx, "fr.json", []byte("a")))
		require.NoError(t, d.Write(ctx, "fr.json", []byte("b")))
		got, err := d.Read(ctx, "fr.json")
		require.NoError(t, err)
		require.Equal(t, "b", string(got))

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		for _, e := range entries {
			require.NotContains(t, e.Name(), ".fr.json.", "temporary file left behind")
		}
	})

	t.Run("rejects escaping names", func(t *testing.T) {
		t.Parallel()
		err := d.Write(ctx, "../outside.json", []byte("x"))
		require.ErrorIs(t, err, storage.ErrInvalidName)
		_, err = d.Read(ctx, "")
		require.ErrorIs(t, err, storage.ErrInvalidName)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		require.ErrorIs(t, d.Write(cctx, "x.json", nil), context.Canceled)
	})
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := storage.NewMemory(map[string]string{"./en/common.json": `{"a":"A"}`})

	got, err := m.Read(ctx, "en/common.json")
	require.NoError(t, err)
	require.Equal(t, `{"a":"A"}`, string(got))

	got[0] = 'X'
	require.Equal(t, `{"a":"A"}`, m.Get("en/common.json"), "read must return a copy")

	_, err = m.Read(ctx, "fr/common.json")
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, m.Write(ctx, "fr/common.json", []byte("{}")))
	require.Equal(t, []string{"en/common.json", "fr/common.json"}, m.Names())
	require.Empty(t, m.Get("de/common.json"))
}
