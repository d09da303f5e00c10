// Package library implements the idempotent save layer over the local
// music store.
//
// All writes that originate from provider payloads flow through the
// Saver, which filters input through the canonical-name matcher before
// inserting. That makes every batch call safe to repeat and safe to race:
// when two requests both fetch and both try to insert, at most one
// insert lands per unique name.
//
// # Partial Saves
//
// Batch album merges return a per-record result list instead of failing
// wholesale. A record that cannot be persisted is reported and skipped;
// its siblings still land. Callers that care about partial success
// inspect the results, callers on best-effort paths log and move on.
package library
