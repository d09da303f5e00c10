package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music-catalog/core/apperr"
	"music-catalog/core/provider"
)

const albumLookupJSON = `{
  "artist": {
    "name": "Radiohead",
    "image_small": "https://img.example/radiohead-small.jpg",
    "image_large": "https://img.example/radiohead-large.jpg",
    "popularity": 82,
    "genres": ["Rock", "Electronic"]
  },
  "album": [
    {
      "name": "OK Computer",
      "release_date": "1997-05-21",
      "popularity": 90,
      "tracks": [
        {"name": "Airbag", "number": 1, "duration": 284000, "artists": "Radiohead"},
        {"name": "Paranoid Android", "number": 2, "duration": 383000, "artists": "Radiohead"}
      ]
    }
  ]
}`

func newCatalog(t *testing.T, handler http.HandlerFunc) *provider.CatalogClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return provider.NewCatalog(provider.Settings{CatalogURL: srv.URL})
}

func TestCatalogGetAlbum(t *testing.T) {
	var gotQuery string
	client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(albumLookupJSON))
	})

	lookup, err := client.GetAlbum(context.Background(), "Radiohead", "OK Computer")
	require.NoError(t, err)
	require.NotNil(t, lookup)

	assert.Contains(t, gotQuery, "artist=Radiohead")
	assert.Contains(t, gotQuery, "album=OK+Computer")

	require.NotNil(t, lookup.Artist)
	assert.Equal(t, "Radiohead", lookup.Artist.Name)
	require.Len(t, lookup.Albums, 1)
	assert.Equal(t, "OK Computer", lookup.Albums[0].Name)
	assert.Equal(t, "1997-05-21", lookup.Albums[0].ReleaseDate)
	require.Len(t, lookup.Albums[0].Tracks, 2)
	assert.Equal(t, 2, lookup.Albums[0].Tracks[1].Number)
}

func TestCatalogGetAlbumNoMatch(t *testing.T) {
	client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	lookup, err := client.GetAlbum(context.Background(), "Nobody", "Nothing")
	assert.NoError(t, err)
	assert.Nil(t, lookup)
}

func TestCatalogGetAlbumEmptyAlbumList(t *testing.T) {
	client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"artist": null, "album": []}`))
	})

	lookup, err := client.GetAlbum(context.Background(), "", "Greatest Hits")
	assert.NoError(t, err)
	assert.Nil(t, lookup)
}

func TestCatalogGetAlbumMalformedPayload(t *testing.T) {
	client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"artist": {`))
	})

	_, err := client.GetAlbum(context.Background(), "Radiohead", "OK Computer")
	assert.True(t, apperr.IsKind(err, apperr.KindProvider))
}

func TestCatalogGetArtistNotFound(t *testing.T) {
	client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetArtist(context.Background(), "Nobody")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCatalogGetArtist(t *testing.T) {
	client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"name": "Radiohead",
			"popularity": 82,
			"genres": ["Rock"],
			"albums": [{"name": "OK Computer", "release_date": "1997-05-21", "tracks": []}]
		}`))
	})

	artist, err := client.GetArtist(context.Background(), "Radiohead")
	require.NoError(t, err)
	assert.Equal(t, "Radiohead", artist.Name)
	require.Len(t, artist.Albums, 1)
	assert.Equal(t, "OK Computer", artist.Albums[0].Name)
}

func TestCatalogServerError(t *testing.T) {
	client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.NewReleases(context.Background())
	assert.True(t, apperr.IsKind(err, apperr.KindProvider))
}

func TestCatalogNewReleases(t *testing.T) {
	client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"albums": [{"name": "Fresh", "release_date": "2026-08-01"}]}`))
	})

	albums, err := client.NewReleases(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Fresh", albums[0].Name)
}
