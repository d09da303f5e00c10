// Package cache provides a generic in-process TTL cache for expensive
// read paths.
//
// The central operation is Remember: return the cached value for a key
// while it is fresh, otherwise run the producer once, store the result
// with an expiry, and return it. Has/Get/Put exist for call sites that
// need manual control, e.g. when the cache key depends on request input
// that is only known after the value is produced.
//
// # Read-Triggered Ingestion
//
// Several producers in this application are not pure reads: they fetch
// from an external provider and persist the result before returning it.
// The cache deliberately permits this ("read triggers lazy ingestion");
// duplicate concurrent production is tolerated because all writes go
// through the idempotent save layer.
package cache
