//go:build integration

package audit_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nsync/pkg/audit"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := audit.OpenRedis(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestRedisExporter(t *testing.T) {
	ctx := context.Background()
	client := newTestRedisClient(t)
	e := audit.NewRedisExporter(client, audit.WithRedisPrefix("test-audit"), audit.WithRedisTTL(time.Minute))

	r := audit.NewRegistry()
	r.Record("en", "ns", translation.Translation{Key: "a", Value: "A", Source: color}, strPtr("A"))
	r.Record("fr", "ns", translation.Translation{Key: "a", Value: "Ah"}, nil)

	require.NoError(t, e.Export(ctx, "run-1", r.State()))

	t.Run("loads by id", func(t *testing.T) {
		s, err := e.Load(ctx, "run-1")
		require.NoError(t, err)
		require.Equal(t, r.State(), s)
	})

	t.Run("loads latest", func(t *testing.T) {
		require.NoError(t, e.Export(ctx, "run-2", audit.State{}))
		s, err := e.Load(ctx, "")
		require.NoError(t, err)
		require.Empty(t, s)
	})

	t.Run("missing latest", func(t *testing.T) {
		other := audit.NewRedisExporter(client, audit.WithRedisPrefix("test-audit-empty"))
		_, err := other.Load(ctx, "")
		require.ErrorIs(t, err, audit.ErrRunNotFound)
	})
}
