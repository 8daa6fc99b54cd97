// Package audit records which translations a generation run wrote and where
// they came from.
//
// A Registry is created per run and filled as files are reconciled. Entries
// are keyed by the fully-qualified key "lang:namespace:path" and carry the
// provenance of the schema unit that produced them (kind, qualified unit name
// and members), plus the value the schema generated for the key. The final
// State is part of the run result.
//
// States can be summarized per language (Summarize), written to JSON
// (WriteJSON) or published to Redis for downstream tooling:
//
//	client, err := audit.OpenRedis(ctx, os.Getenv("REDIS_URL"))
//	exp := audit.NewRedisExporter(client, audit.WithRedisTTL(30*24*time.Hour))
//	err = exp.Export(ctx, result.RunID, result.State)
package audit
