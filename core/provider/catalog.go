package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"music-catalog/core/apperr"
)

// Catalog is the typed client over the external catalog provider, the
// authoritative source of album, artist and track metadata.
type Catalog interface {
	// GetAlbum looks up an album by name, optionally scoped to an artist.
	// It returns (nil, nil) when the provider has no match.
	GetAlbum(ctx context.Context, artistName, albumName string) (*AlbumLookup, error)

	// GetArtist returns the full artist payload including all albums and
	// their tracks. It fails with a NotFound error when the provider has
	// no such artist.
	GetArtist(ctx context.Context, name string) (*ArtistFull, error)

	// NewReleases returns the provider's latest album releases.
	NewReleases(ctx context.Context) ([]Album, error)
}

// CatalogClient is the HTTP implementation of Catalog.
type CatalogClient struct {
	baseURL string
	http    *http.Client
}

// NewCatalog creates a catalog client from the provider settings. When
// client credentials are configured, requests authenticate through the
// OAuth2 client-credentials flow; otherwise a plain client is used
// (tests, or providers without auth).
func NewCatalog(cfg Settings) *CatalogClient {
	httpClient := &http.Client{Timeout: cfg.Timeout()}

	if cfg.CatalogClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.CatalogClientID,
			ClientSecret: cfg.CatalogClientSecret,
			TokenURL:     cfg.CatalogTokenURL,
		}
		// Token requests inherit the timeout-bound client.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = cc.Client(ctx)
		httpClient.Timeout = cfg.Timeout()
	}

	return &CatalogClient{
		baseURL: strings.TrimRight(cfg.CatalogURL, "/"),
		http:    httpClient,
	}
}

// GetAlbum implements Catalog.
func (c *CatalogClient) GetAlbum(ctx context.Context, artistName, albumName string) (*AlbumLookup, error) {
	query := url.Values{"album": {albumName}}
	if artistName != "" {
		query.Set("artist", artistName)
	}

	var lookup AlbumLookup
	found, err := c.getJSON(ctx, "/albums", query, &lookup)
	if err != nil {
		return nil, err
	}
	if !found || len(lookup.Albums) == 0 {
		return nil, nil
	}

	return &lookup, nil
}

// GetArtist implements Catalog.
func (c *CatalogClient) GetArtist(ctx context.Context, name string) (*ArtistFull, error) {
	query := url.Values{"name": {name}}

	var artist ArtistFull
	found, err := c.getJSON(ctx, "/artists", query, &artist)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound(fmt.Sprintf("artist %q not found on catalog provider", name))
	}
	if artist.Name == "" {
		return nil, apperr.Provider("catalog provider returned malformed artist payload", nil)
	}

	return &artist, nil
}

// NewReleases implements Catalog.
func (c *CatalogClient) NewReleases(ctx context.Context) ([]Album, error) {
	var payload struct {
		Albums []Album `json:"albums"`
	}

	found, err := c.getJSON(ctx, "/new-releases", nil, &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.Provider("catalog provider has no new-releases endpoint", nil)
	}

	return payload.Albums, nil
}

// getJSON performs a GET against the catalog API and decodes the body
// into out. It returns found=false on a 404 response.
func (c *CatalogClient) getJSON(ctx context.Context, path string, query url.Values, out any) (bool, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, apperr.Provider("catalog provider request could not be built", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, apperr.Provider("catalog provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, apperr.Provider(fmt.Sprintf("catalog provider returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, apperr.Provider("catalog provider returned malformed payload", err)
	}

	return true, nil
}
