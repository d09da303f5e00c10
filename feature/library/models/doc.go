// Package models defines the canonical local store: artists, albums,
// tracks, genres and the genre/artist association.
//
// Artists and genres are unique under canonical-name equality (see
// core/slug); albums are unique per (name, artist_id) with artist_id 0
// reserved for compilations. Tracks are owned by their album and
// cascade-deleted with it.
package models
