package genre

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"music-catalog/core/apperr"
	"music-catalog/core/cache"
	"music-catalog/core/provider"
	"music-catalog/core/slug"
	"music-catalog/feature/library"
	"music-catalog/feature/library/models"
)

const (
	// tagListTTL caches the tags-provider genre listing.
	tagListTTL = 48 * time.Hour
	// localListTTL caches local genre listings per (limit, names) query.
	localListTTL = 24 * time.Hour
	// genreArtistsTTL throttles how often a genre's artist roster is
	// refreshed from the tags provider.
	genreArtistsTTL = 72 * time.Hour

	// artistsPerPage is the default page size of the genre artist listing.
	artistsPerPage = 20
	// topArtistsLimit is how many artists are pulled per refresh.
	topArtistsLimit = 50
)

// View is a genre as served to clients. Remote listings fill Popularity
// and Image; local listings fill ID and Artists.
type View struct {
	ID         uint            `json:"id,omitempty"`
	Name       string          `json:"name"`
	Popularity int             `json:"popularity,omitempty"`
	Image      string          `json:"image,omitempty"`
	Artists    []models.Artist `json:"artists,omitempty"`
}

// ArtistsPage is one page of a genre's artist roster.
type ArtistsPage struct {
	Genre   models.Genre    `json:"genre"`
	Artists []models.Artist `json:"artists"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
	Total   int64           `json:"total"`
}

// Service serves genre listings and genre artist rosters, pulling from
// the tags provider when so configured.
type Service struct {
	db       *gorm.DB
	cache    *cache.Cache
	saver    *library.Saver
	settings provider.Settings
	logger   *zap.Logger

	// tags is nil under the local genre-provider policy.
	tags provider.Tags
}

// NewService creates a new genre service. Pass a nil tags client to
// serve genres from the local store only.
func NewService(db *gorm.DB, c *cache.Cache, saver *library.Saver, tags provider.Tags, settings provider.Settings, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		cache:    c,
		saver:    saver,
		tags:     tags,
		settings: settings,
		logger:   logger,
	}
}

// GetGenres lists genres. Under the tags-provider policy the listing
// comes from the provider's top tags (or the configured homepage list);
// otherwise names selects local genres by comma-separated name, each
// with up to limit artists.
func (s *Service) GetGenres(ctx context.Context, names string, limit int) ([]View, error) {
	if limit <= 0 {
		limit = artistsPerPage
	}

	if s.tags != nil {
		return s.remoteGenres(ctx, names)
	}
	return s.localGenres(ctx, names, limit)
}

func (s *Service) remoteGenres(ctx context.Context, names string) ([]View, error) {
	// A configured homepage list overrides the provider listing.
	if homepage := s.settings.HomepageGenreList(); len(homepage) > 0 {
		views := make([]View, len(homepage))
		for i, name := range homepage {
			views[i] = View{Name: name, Image: imagePath(name)}
		}
		return views, nil
	}

	value, err := s.cache.Remember("genres.tags."+names, tagListTTL, func() (any, error) {
		tags, err := s.tags.TopTags(ctx)
		if err != nil {
			return nil, err
		}

		// Persist the names so rosters and local listings can refer to
		// them later; the listing itself is provider-shaped.
		tagNames := make([]string, len(tags))
		views := make([]View, len(tags))
		for i, tag := range tags {
			tagNames[i] = tag.Name
			views[i] = View{Name: tag.Name, Popularity: tag.Count, Image: imagePath(tag.Name)}
		}
		if _, err := s.saver.SaveOrUpdateGenres(ctx, tagNames); err != nil {
			return nil, err
		}

		return views, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]View), nil
}

func (s *Service) localGenres(ctx context.Context, names string, limit int) ([]View, error) {
	requested := splitNames(names)
	if len(requested) == 0 {
		return nil, apperr.NotFound("no genres requested")
	}

	key := fmt.Sprintf("genres.%d.%s", limit, names)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]View), nil
	}

	var genres []models.Genre
	err := s.db.WithContext(ctx).Where("name IN ?", requested).Find(&genres).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}
	if len(genres) == 0 {
		return nil, apperr.NotFound("no matching genres")
	}

	// Serve in the order the caller asked for.
	ordered := make([]models.Genre, 0, len(genres))
	for _, name := range requested {
		for _, g := range genres {
			if slug.Matches(g.Name, name) {
				ordered = append(ordered, g)
				break
			}
		}
	}

	views := make([]View, len(ordered))
	for i, g := range ordered {
		var artists []models.Artist
		err := s.db.WithContext(ctx).
			Select("artists.*").
			Joins("JOIN genre_artist ON genre_artist.artist_id = artists.id").
			Where("genre_artist.genre_id = ?", g.ID).
			Limit(limit).
			Find(&artists).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load genre artists: %w", err)
		}
		views[i] = View{ID: g.ID, Name: g.Name, Image: imagePath(g.Name), Artists: artists}
	}

	s.cache.Put(key, views, localListTTL)
	return views, nil
}

// PaginateArtists returns one page of a genre's artist roster. Genres on
// the configured homepage list are created on first request; all others
// must already exist. Under the tags-provider policy the roster is
// refreshed from the provider at most once per TTL window.
func (s *Service) PaginateArtists(ctx context.Context, name string, page, perPage int) (*ArtistsPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = artistsPerPage
	}

	genre, err := s.resolveGenre(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.tags != nil {
		// A provider hiccup degrades to whatever the store holds.
		_, err := s.cache.Remember(genre.Name+".artists", genreArtistsTTL, func() (any, error) {
			return s.refreshArtists(ctx, genre)
		})
		if err != nil {
			s.logger.Warn("Genre artist refresh failed, serving local roster",
				zap.String("genre", genre.Name), zap.Error(err))
		}
	}

	var total int64
	err = s.db.WithContext(ctx).Model(&models.GenreArtist{}).
		Where("genre_id = ?", genre.ID).
		Count(&total).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count genre artists: %w", err)
	}

	var artists []models.Artist
	err = s.db.WithContext(ctx).
		Select("artists.*").
		Joins("JOIN genre_artist ON genre_artist.artist_id = artists.id").
		Where("genre_artist.genre_id = ?", genre.ID).
		Order("artists.spotify_popularity DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&artists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load genre artists: %w", err)
	}

	return &ArtistsPage{
		Genre:   *genre,
		Artists: artists,
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}, nil
}

// resolveGenre finds the genre row, creating it only when the name is on
// the homepage allow list.
func (s *Service) resolveGenre(ctx context.Context, name string) (*models.Genre, error) {
	if slug.ContainsName(name, s.settings.HomepageGenreList()) {
		genres, err := s.saver.SaveOrUpdateGenres(ctx, []string{name})
		if err != nil {
			return nil, err
		}
		if len(genres) == 0 {
			return nil, apperr.NotFound(fmt.Sprintf("genre %q not found", name))
		}
		return &genres[0], nil
	}

	var genre models.Genre
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(fmt.Sprintf("genre %q not found", name))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load genre: %w", err)
	}
	return &genre, nil
}

// refreshArtists pulls the genre's top artists from the tags provider
// and folds the new ones into the store.
func (s *Service) refreshArtists(ctx context.Context, genre *models.Genre) (any, error) {
	top, err := s.tags.TopArtists(ctx, genre.Name, topArtistsLimit)
	if err != nil {
		return nil, err
	}

	artists, err := s.saver.InsertMissingArtists(ctx, top)
	if err != nil {
		return nil, err
	}

	pairs := make([]models.GenreArtist, len(artists))
	for i, artist := range artists {
		pairs[i] = models.GenreArtist{GenreID: genre.ID, ArtistID: artist.ID}
	}
	if err := s.saver.SaveGenreArtists(ctx, pairs); err != nil {
		return nil, err
	}

	return len(artists), nil
}

// imagePath maps a genre name onto its static artwork path.
func imagePath(name string) string {
	return "assets/images/genres/" + slug.Normalize(name) + ".jpg"
}

// splitNames splits a comma-separated name list, dropping empty entries.
func splitNames(names string) []string {
	var out []string
	for _, part := range strings.Split(names, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
