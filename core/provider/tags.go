package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"music-catalog/core/apperr"
)

// smallImageIndex is the variant index the tags provider uses for the
// "small" artist image in its size array.
const smallImageIndex = 4

// topTagsBackoff is the fixed wait before the single top-tags retry.
const topTagsBackoff = 3 * time.Second

// Tags is the typed client over the external tags provider, which
// supplies genre tags and per-genre popular-artist listings.
type Tags interface {
	// TopTags returns the most popular genre tags. A malformed or empty
	// response is retried exactly once after a fixed backoff before the
	// failure surfaces.
	TopTags(ctx context.Context) ([]Tag, error)

	// TopArtists returns the most popular artists for a tag.
	TopArtists(ctx context.Context, tag string, limit int) ([]TagArtist, error)
}

// TagsClient is the HTTP implementation of Tags for a Last.fm style API:
// a single endpoint addressed by a method query parameter, JSON format,
// api key required.
type TagsClient struct {
	baseURL string
	apiKey  string
	http    *http.Client

	// backoff is overridable in tests.
	backoff time.Duration
}

// NewTags creates a tags client from the provider settings.
func NewTags(cfg Settings) *TagsClient {
	return &TagsClient{
		baseURL: cfg.TagsURL,
		apiKey:  cfg.TagsAPIKey,
		http:    &http.Client{Timeout: cfg.Timeout()},
		backoff: topTagsBackoff,
	}
}

type rawTag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type topTagsResponse struct {
	TopTags *struct {
		Tag []rawTag `json:"tag"`
	} `json:"toptags"`
}

// TopTags implements Tags.
func (c *TagsClient) TopTags(ctx context.Context) ([]Tag, error) {
	query := url.Values{"method": {"tag.getTopTags"}}

	var payload topTagsResponse
	err := c.getJSON(ctx, query, &payload)
	if err == nil && payload.TopTags == nil {
		err = apperr.Provider("tags provider returned no toptags", nil)
	}

	// One retry after a fixed backoff; the provider intermittently
	// returns empty bodies under load.
	if err != nil {
		select {
		case <-time.After(c.backoff):
		case <-ctx.Done():
			return nil, apperr.Provider("top tags request cancelled", ctx.Err())
		}

		payload = topTagsResponse{}
		if err = c.getJSON(ctx, query, &payload); err != nil {
			return nil, err
		}
		if payload.TopTags == nil {
			return nil, apperr.Provider("tags provider returned no toptags", nil)
		}
	}

	tags := make([]Tag, 0, len(payload.TopTags.Tag))
	for _, t := range payload.TopTags.Tag {
		if t.Name == "" {
			continue
		}
		tags = append(tags, Tag{Name: t.Name, Count: t.Count})
	}

	return tags, nil
}

type rawTagArtist struct {
	Name  string `json:"name"`
	Image []struct {
		Text string `json:"#text"`
		Size string `json:"size"`
	} `json:"image"`
}

type topArtistsResponse struct {
	TopArtists *struct {
		Artist []rawTagArtist `json:"artist"`
	} `json:"topartists"`
}

// TopArtists implements Tags.
func (c *TagsClient) TopArtists(ctx context.Context, tag string, limit int) ([]TagArtist, error) {
	if limit <= 0 {
		limit = 50
	}

	query := url.Values{
		"method": {"tag.gettopartists"},
		"tag":    {tag},
		"limit":  {strconv.Itoa(limit)},
	}

	var payload topArtistsResponse
	if err := c.getJSON(ctx, query, &payload); err != nil {
		return nil, err
	}
	if payload.TopArtists == nil {
		return nil, apperr.Provider("tags provider returned no topartists", nil)
	}

	artists := make([]TagArtist, 0, len(payload.TopArtists.Artist))
	for _, a := range payload.TopArtists.Artist {
		artist := TagArtist{Name: a.Name}
		if len(a.Image) > smallImageIndex {
			artist.ImageSmall = a.Image[smallImageIndex].Text
		} else if len(a.Image) > 0 {
			artist.ImageSmall = a.Image[len(a.Image)-1].Text
		}
		artists = append(artists, artist)
	}

	return artists, nil
}

// getJSON performs a GET against the tags API and decodes the body into out.
func (c *TagsClient) getJSON(ctx context.Context, query url.Values, out any) error {
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return apperr.Provider("tags provider request could not be built", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Provider("tags provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperr.Provider(fmt.Sprintf("tags provider returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Provider("tags provider returned malformed payload", err)
	}

	return nil
}
