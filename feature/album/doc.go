// Package album serves album reads and writes.
//
// The read path is where local data and the catalog provider meet: a
// lookup first consults the local store, and only reaches out to the
// provider when the row is missing or was never fully scraped. Provider
// outages degrade to whatever local data exists rather than failing the
// request, as long as that data has tracks.
//
// An album whose artist is unknown locally triggers a full artist
// ingestion instead of a single-album merge, so the discography arrives
// in one pass. Compilations (artist_id 0) are never created by lookups,
// only refreshed.
package album
