package provider

import (
	"strings"
	"time"
)

// Settings holds the provider policy and credentials configuration.
// It is loaded once at startup and passed explicitly to the services;
// nothing reads provider policy ambiently at request time.
type Settings struct {
	// DataProvider selects the catalog provider policy. "local" disables
	// all external refetching; any other value enables the catalog merge.
	DataProvider string `mapstructure:"data_provider" default:"spotify"`
	// GenreProvider selects the genre read path. "last.fm" routes genre
	// reads to the tags provider; anything else uses the local store.
	GenreProvider string `mapstructure:"genre_provider" default:"last.fm"`
	// HomepageGenres is a comma-separated fixed genre allow-list used for
	// the homepage and for implicit genre creation.
	HomepageGenres string `mapstructure:"homepage_genres" default:""`
	// LatestAlbumsStrict sources the latest-albums view live from the
	// catalog provider's new releases instead of the local store.
	LatestAlbumsStrict bool `mapstructure:"latest_albums_strict" default:"false"`
	// HomepageUpdateInterval is the TTL in days for homepage aggregate
	// caches (top albums, latest albums).
	HomepageUpdateInterval int `mapstructure:"homepage_update_interval" default:"7"`

	// CatalogURL is the base URL of the catalog provider API.
	CatalogURL string `mapstructure:"catalog_url" default:"https://api.catalog.example/v1"`
	// CatalogTokenURL is the OAuth2 client-credentials token endpoint.
	CatalogTokenURL string `mapstructure:"catalog_token_url" default:"https://auth.catalog.example/token"`
	// CatalogClientID is the OAuth2 client id for the catalog provider.
	CatalogClientID string `mapstructure:"catalog_client_id" default:""`
	// CatalogClientSecret is the OAuth2 client secret for the catalog provider.
	CatalogClientSecret string `mapstructure:"catalog_client_secret" default:""`

	// TagsURL is the base URL of the tags provider API.
	TagsURL string `mapstructure:"tags_url" default:"https://ws.audioscrobbler.com/2.0/"`
	// TagsAPIKey is the tags provider API key.
	TagsAPIKey string `mapstructure:"tags_api_key" default:""`

	// TimeoutSeconds is the per-request timeout for provider calls.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

// ExternalCatalog reports whether the catalog provider policy allows
// external refetching.
func (s Settings) ExternalCatalog() bool {
	return s.DataProvider != "local"
}

// LastfmGenres reports whether genre reads are routed to the tags provider.
func (s Settings) LastfmGenres() bool {
	return s.GenreProvider == "last.fm"
}

// HomepageGenreList returns the configured homepage genres, trimmed.
// It returns nil when no list is configured.
func (s Settings) HomepageGenreList() []string {
	if strings.TrimSpace(s.HomepageGenres) == "" {
		return nil
	}

	parts := strings.Split(s.HomepageGenres, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

// HomepageTTL returns the homepage aggregate cache TTL.
func (s Settings) HomepageTTL() time.Duration {
	days := s.HomepageUpdateInterval
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// Timeout returns the per-request provider timeout.
func (s Settings) Timeout() time.Duration {
	seconds := s.TimeoutSeconds
	if seconds <= 0 {
		seconds = 15
	}
	return time.Duration(seconds) * time.Second
}
