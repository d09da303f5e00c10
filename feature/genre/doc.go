// Package genre serves genre listings and per-genre artist rosters.
//
// Which provider backs the listing is decided once at wiring: with a
// tags client the listing mirrors the provider's top tags (persisting
// the names locally as a side effect), without one it reads the local
// store. Artist rosters are refreshed from the tags provider at most
// once per TTL window; a provider failure degrades to the local roster.
package genre
