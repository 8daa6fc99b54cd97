package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisPrefix  = "i18nsync"
	defaultConnAttempts = 3
	defaultConnInterval = time.Second
)

// ConnOption configures OpenRedis.
type ConnOption func(*connOptions)

type connOptions struct {
	attempts int
	interval time.Duration
}

// WithRetry sets how many pings OpenRedis attempts and the base wait
// between them. Default: 3 attempts, 1 second.
func WithRetry(attempts int, interval time.Duration) ConnOption {
	return func(o *connOptions) {
		o.attempts = attempts
		o.interval = interval
	}
}

// OpenRedis connects to the Redis server at url (redis:// or rediss://),
// retrying the initial ping with a linear backoff.
func OpenRedis(ctx context.Context, url string, opts ...ConnOption) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyRedisURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrInvalidRedisURL
	}

	o := &connOptions{attempts: defaultConnAttempts, interval: defaultConnInterval}
	for _, opt := range opts {
		opt(o)
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}
	return connect(ctx, redisOpts, max(o.attempts, 1), o.interval)
}

func connect(ctx context.Context, opts *redis.Options, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	var pingErr error
	for i := range attempts {
		client := redis.NewClient(opts)
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisUnavailable, pingErr, ctx.Err())
		case <-time.After(time.Duration(i+1) * interval):
		}
	}
	return nil, errors.Join(ErrRedisUnavailable, pingErr)
}

// RedisOption configures a RedisExporter.
type RedisOption func(*RedisExporter)

// WithRedisPrefix sets the key prefix. Default: "i18nsync".
func WithRedisPrefix(prefix string) RedisOption {
	return func(e *RedisExporter) {
		if prefix != "" {
			e.prefix = prefix
		}
	}
}

// WithRedisTTL expires exported runs after ttl. Zero keeps them forever.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(e *RedisExporter) {
		e.ttl = max(ttl, 0)
	}
}

// RedisExporter publishes run states so downstream tooling can query
// translation coverage without access to the resource files.
//
// Layout: one hash per run at "<prefix>:run:<id>" (field = fully-qualified
// key, value = JSON entry) and the id of the last exported run at "<prefix>:latest".
type RedisExporter struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisExporter creates an exporter on top of an open client.
// The client lifecycle stays with the caller.
func NewRedisExporter(client redis.UniversalClient, opts ...RedisOption) *RedisExporter {
	e := &RedisExporter{client: client, prefix: defaultRedisPrefix}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export replaces the stored state of runID and marks it as the latest run.
func (e *RedisExporter) Export(ctx context.Context, runID string, s State) error {
	if runID == "" {
		return ErrEmptyRunID
	}

	fields := make(map[string]any, len(s))
	for k, entry := range s {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExport, err)
		}
		fields[k] = data
	}

	key := e.runKey(runID)
	pipe := e.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(fields) > 0 {
		pipe.HSet(ctx, key, fields)
		if e.ttl > 0 {
			pipe.Expire(ctx, key, e.ttl)
		}
	}
	pipe.Set(ctx, e.latestKey(), runID, e.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

// Load reads the state of runID. An empty runID loads the latest run.
func (e *RedisExporter) Load(ctx context.Context, runID string) (State, error) {
	if runID == "" {
		id, err := e.client.Get(ctx, e.latestKey()).Result()
		if errors.Is(err, redis.Nil) {
			return nil, ErrRunNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrImport, err)
		}
		runID = id
	}

	raw, err := e.client.HGetAll(ctx, e.runKey(runID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}

	s := make(State, len(raw))
	for k, v := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrImport, k, err)
		}
		s[k] = entry
	}
	return s, nil
}

func (e *RedisExporter) runKey(runID string) string {
	return e.prefix + ":run:" + runID
}

func (e *RedisExporter) latestKey() string {
	return e.prefix + ":latest"
}
