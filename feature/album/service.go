package album

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"music-catalog/core/apperr"
	"music-catalog/core/cache"
	"music-catalog/core/provider"
	"music-catalog/feature/library"
	"music-catalog/feature/library/models"
)

// VariousArtists is the sentinel artist name routing an album lookup to
// the compilation branch.
const VariousArtists = "Various Artists"

// topAlbumsKey and latestAlbumsKey cache the homepage aggregates.
const (
	topAlbumsKey    = "albums.top"
	latestAlbumsKey = "albums.latest"
)

// Service answers album lookups by reconciling the local store with the
// catalog provider, and carries the album write operations.
type Service struct {
	db       *gorm.DB
	cache    *cache.Cache
	saver    *library.Saver
	settings provider.Settings
	logger   *zap.Logger

	// catalog is nil under the local data-provider policy; the variant
	// is fixed at construction, request paths never consult the policy
	// string.
	catalog provider.Catalog
}

// NewService creates a new album service. Pass a nil catalog to disable
// all external refetching (data_provider=local).
func NewService(db *gorm.DB, c *cache.Cache, saver *library.Saver, catalog provider.Catalog, settings provider.Settings, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		cache:    c,
		saver:    saver,
		catalog:  catalog,
		settings: settings,
		logger:   logger,
	}
}

// GetAlbum resolves an album by name, refetching and merging provider
// data when the local row is missing or incomplete. An empty artistName
// or the VariousArtists sentinel routes to the compilation branch.
func (s *Service) GetAlbum(ctx context.Context, artistName, albumName string) (*models.Album, error) {
	artistName = collapseWhitespace(artistName)
	albumName = collapseWhitespace(albumName)

	compilation := artistName == "" || artistName == VariousArtists

	album, err := s.findLocal(ctx, compilation, artistName, albumName)
	if err != nil {
		return nil, err
	}

	// Compilations are only refreshed, never created by a lookup.
	if compilation && album == nil {
		return nil, apperr.NotFound(fmt.Sprintf("album %q not found", albumName))
	}

	if err := s.refresh(ctx, album, compilation, artistName, albumName); err != nil {
		return nil, err
	}

	final, err := s.findLocal(ctx, compilation, artistName, albumName)
	if err != nil {
		return nil, err
	}
	if final == nil {
		return nil, apperr.NotFound(fmt.Sprintf("album %q not found", albumName))
	}

	return final, nil
}

// GetAlbumByID loads an album with its artist and tracks.
func (s *Service) GetAlbumByID(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	err := s.db.WithContext(ctx).Preload("Artist").Preload("Tracks").First(&album, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(fmt.Sprintf("album %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load album: %w", err)
	}
	return &album, nil
}

// refresh decides whether local data can be trusted and performs the
// provider fetch and merge when it cannot. A nil error means the caller
// can re-resolve the album locally.
func (s *Service) refresh(ctx context.Context, album *models.Album, compilation bool, artistName, albumName string) error {
	// Local-only policy, or local data complete enough to serve.
	if s.catalog == nil {
		return nil
	}
	if album != nil && album.Complete() {
		return nil
	}

	lookupArtist := artistName
	if compilation {
		lookupArtist = ""
	}

	data, err := s.catalog.GetAlbum(ctx, lookupArtist, albumName)
	if err != nil {
		// Stale-but-present beats a failed live fetch.
		if album != nil && len(album.Tracks) > 0 {
			s.logger.Warn("Catalog fetch failed, serving stale album",
				zap.String("album", albumName), zap.Error(err))
			return nil
		}
		return err
	}

	if data == nil {
		if album != nil && len(album.Tracks) > 0 {
			return nil
		}
		return apperr.NotFound(fmt.Sprintf("album %q not found on catalog provider", albumName))
	}
	if len(data.Albums) == 0 || len(data.Albums[0].Tracks) == 0 {
		return apperr.NotFound(fmt.Sprintf("album %q has no tracks on catalog provider", albumName))
	}

	// The provider knows the artist but we have no local link yet:
	// ingest the full artist instead, which materializes all albums
	// including this one.
	if !compilation && data.Artist != nil && (album == nil || album.ArtistID == 0) {
		full, err := s.catalog.GetArtist(ctx, artistName)
		if err != nil {
			return err
		}
		if _, err := s.saver.SaveArtist(ctx, full); err != nil {
			return fmt.Errorf("artist ingestion failed: %w", err)
		}
		return nil
	}

	var albumArtist *models.Artist
	var existingID uint
	if album != nil {
		existingID = album.ID
		albumArtist = album.Artist
	}

	// Best-effort merge: a failed record is logged, not fatal.
	for _, result := range s.saver.SaveAlbums(ctx, data.Albums, albumArtist, existingID) {
		if result.Err != nil {
			s.logger.Warn("Album merge failed",
				zap.String("album", result.Name), zap.Error(result.Err))
		}
	}

	if album == nil {
		album = &models.Album{}
		err := s.db.WithContext(ctx).
			Where("name = ? AND release_date = ?", data.Albums[0].Name, data.Albums[0].ReleaseDate).
			First(album).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(fmt.Sprintf("album %q could not be merged", albumName))
		}
		if err != nil {
			return fmt.Errorf("failed to re-resolve album: %w", err)
		}
	}

	return s.saver.SaveTracks(ctx, data.Albums, album)
}

// findLocal resolves an album row by (name, artist) match, with the
// compilation branch matching artist_id = 0. A missing row is (nil, nil).
func (s *Service) findLocal(ctx context.Context, compilation bool, artistName, albumName string) (*models.Album, error) {
	q := s.db.WithContext(ctx).Preload("Artist").Preload("Tracks")

	var album models.Album
	var err error
	if compilation {
		err = q.Where("name = ? AND artist_id = 0", albumName).First(&album).Error
	} else {
		err = q.Select("albums.*").
			Joins("JOIN artists ON artists.id = albums.artist_id").
			Where("albums.name = ? AND artists.name = ?", albumName, artistName).
			First(&album).Error
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up album: %w", err)
	}

	return &album, nil
}

// TopAlbums returns the most popular albums with a usable track count,
// cached under the homepage TTL.
func (s *Service) TopAlbums(ctx context.Context) ([]models.Album, error) {
	value, err := s.cache.Remember(topAlbumsKey, s.settings.HomepageTTL(), func() (any, error) {
		var albums []models.Album
		err := s.db.WithContext(ctx).
			Preload("Artist").Preload("Tracks").
			Where("(SELECT COUNT(*) FROM tracks WHERE tracks.album_id = albums.id) >= ?", 5).
			Order("spotify_popularity DESC").
			Limit(40).
			Find(&albums).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load top albums: %w", err)
		}
		return albums, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Album), nil
}

// LatestAlbums returns the latest releases, either live from the catalog
// provider (latest_albums_strict) or from the local store, cached under
// the homepage TTL.
func (s *Service) LatestAlbums(ctx context.Context) ([]models.Album, error) {
	value, err := s.cache.Remember(latestAlbumsKey, s.settings.HomepageTTL(), func() (any, error) {
		if s.settings.LatestAlbumsStrict && s.catalog != nil {
			releases, err := s.catalog.NewReleases(ctx)
			if err != nil {
				return nil, err
			}

			albums := make([]models.Album, len(releases))
			for i, r := range releases {
				albums[i] = models.Album{
					Name:              r.Name,
					ReleaseDate:       r.ReleaseDate,
					Image:             r.Image,
					SpotifyPopularity: r.Popularity,
				}
			}
			return albums, nil
		}

		var albums []models.Album
		err := s.db.WithContext(ctx).
			Select("albums.*").
			Joins("JOIN artists ON artists.id = albums.artist_id").
			Order("albums.release_date DESC").
			Limit(40).
			Preload("Artist").Preload("Tracks").
			Find(&albums).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load latest albums: %w", err)
		}
		return albums, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Album), nil
}

// CreateInput is the write-API payload for creating an album.
type CreateInput struct {
	Name              string `json:"name"`
	ArtistName        string `json:"artist_name"`
	ReleaseDate       string `json:"release_date"`
	Image             string `json:"image"`
	SpotifyPopularity int    `json:"spotify_popularity"`
}

// Create inserts a new album under an existing artist. It conflicts when
// the artist is unknown or the name is already taken under that artist.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Album, error) {
	fields := make(map[string]string)
	if n := strings.TrimSpace(input.Name); len(n) < 1 || len(n) > 255 {
		fields["name"] = "name must be between 1 and 255 characters"
	}
	if n := strings.TrimSpace(input.ArtistName); len(n) < 1 || len(n) > 255 {
		fields["artist_name"] = "artist name must be between 1 and 255 characters"
	}
	if len(fields) > 0 {
		return nil, apperr.Validation("invalid album payload", fields)
	}

	var artist models.Artist
	err := s.db.WithContext(ctx).Where("name = ?", input.ArtistName).First(&artist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Conflict(fmt.Sprintf("artist %q does not exist yet", input.ArtistName))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up artist: %w", err)
	}

	var count int64
	err = s.db.WithContext(ctx).Model(&models.Album{}).
		Where("artist_id = ? AND name = ?", artist.ID, input.Name).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate album: %w", err)
	}
	if count > 0 {
		return nil, apperr.Conflict(fmt.Sprintf("album %q already exists for %s", input.Name, artist.Name))
	}

	album := models.Album{
		Name:              input.Name,
		ArtistID:          artist.ID,
		ReleaseDate:       input.ReleaseDate,
		Image:             input.Image,
		SpotifyPopularity: input.SpotifyPopularity,
	}
	if err := s.db.WithContext(ctx).Create(&album).Error; err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	album.Artist = &artist
	return &album, nil
}

// UpdateInput is the write-API payload for updating an album. Nil fields
// are left unchanged.
type UpdateInput struct {
	Name              *string `json:"name"`
	ReleaseDate       *string `json:"release_date"`
	Image             *string `json:"image"`
	SpotifyPopularity *int    `json:"spotify_popularity"`
}

// Update applies the non-nil fields of input to an existing album.
func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (*models.Album, error) {
	album, err := s.GetAlbumByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	if input.Name != nil {
		if n := strings.TrimSpace(*input.Name); len(n) < 1 || len(n) > 255 {
			return nil, apperr.Validation("invalid album payload", map[string]string{
				"name": "name must be between 1 and 255 characters",
			})
		}
		changes["name"] = *input.Name
	}
	if input.ReleaseDate != nil {
		changes["release_date"] = *input.ReleaseDate
	}
	if input.Image != nil {
		changes["image"] = *input.Image
	}
	if input.SpotifyPopularity != nil {
		changes["spotify_popularity"] = *input.SpotifyPopularity
	}

	if len(changes) > 0 {
		if err := s.db.WithContext(ctx).Model(album).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("failed to update album: %w", err)
		}
	}

	return album, nil
}

// Delete removes the given albums and their tracks, returning how many
// albums were actually deleted. Unknown ids are skipped.
func (s *Service) Delete(ctx context.Context, ids []uint) (int, error) {
	deleted := 0
	for _, id := range ids {
		var album models.Album
		err := s.db.WithContext(ctx).First(&album, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return deleted, fmt.Errorf("failed to load album %d: %w", id, err)
		}

		if err := s.db.WithContext(ctx).Where("album_id = ?", album.ID).Delete(&models.Track{}).Error; err != nil {
			return deleted, fmt.Errorf("failed to delete tracks of album %d: %w", id, err)
		}
		if err := s.db.WithContext(ctx).Delete(&album).Error; err != nil {
			return deleted, fmt.Errorf("failed to delete album %d: %w", id, err)
		}
		deleted++
	}

	return deleted, nil
}

// collapseWhitespace trims and squeezes internal whitespace runs to a
// single space, mirroring what lookups expect from provider names.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
