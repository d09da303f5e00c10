// Package provider contains the typed gateway over the two external
// metadata providers and the provider policy configuration.
//
// Two clients exist:
//  1. Catalog (Spotify-style): authoritative album, artist and track
//     metadata, addressed by artist and album name. Authenticates via
//     the OAuth2 client-credentials flow when credentials are configured.
//  2. Tags (Last.fm-style): genre tags and per-genre popular artists,
//     addressed through a single endpoint with a method query parameter
//     and an api key.
//
// Both clients normalize raw payloads into the DTOs in types.go before
// returning them; malformed payloads surface as Provider errors instead
// of raw decoding failures. Every call enforces its own request timeout.
// The top-tags call additionally retries exactly once after a fixed
// backoff, matching the provider's habit of returning empty bodies.
//
// Which provider variant serves a request is decided once at wiring time
// from Settings (data_provider / genre_provider); request paths never
// branch on provider names.
package provider
