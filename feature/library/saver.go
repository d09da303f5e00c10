package library

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"music-catalog/core/provider"
	"music-catalog/core/slug"
	"music-catalog/feature/library/models"
)

// Saver is the idempotent save layer between provider payloads and the
// local store. Every insert path filters its input through the matcher
// against existing rows, so repeated calls with overlapping input never
// create duplicates.
type Saver struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSaver creates a new save layer.
func NewSaver(db *gorm.DB, logger *zap.Logger) *Saver {
	return &Saver{db: db, logger: logger}
}

// SaveResult is the per-record outcome of a batch save. A failed record
// never aborts its siblings; callers inspect results to detect partial
// success.
type SaveResult struct {
	Name    string
	Created bool
	Err     error
}

// SaveOrUpdateGenres inserts the genres that do not exist yet under
// canonical-name equality and returns the rows for all requested names,
// in request order.
func (s *Saver) SaveOrUpdateGenres(ctx context.Context, names []string) ([]models.Genre, error) {
	// Names that normalize to nothing would match every row.
	wanted := make([]string, 0, len(names))
	for _, name := range names {
		if slug.Normalize(name) == "" || slug.ContainsName(name, wanted) {
			continue
		}
		wanted = append(wanted, name)
	}
	if len(wanted) == 0 {
		return nil, nil
	}

	var existing []models.Genre
	if err := s.db.WithContext(ctx).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}

	existingNames := make([]string, len(existing))
	for i, g := range existing {
		existingNames[i] = g.Name
	}

	var missing []models.Genre
	for _, name := range wanted {
		if !slug.ContainsName(name, existingNames) {
			missing = append(missing, models.Genre{Name: name})
		}
	}
	if len(missing) > 0 {
		if err := s.db.WithContext(ctx).Create(&missing).Error; err != nil {
			return nil, fmt.Errorf("failed to insert genres: %w", err)
		}
	}

	rows := append(existing, missing...)
	result := make([]models.Genre, 0, len(wanted))
	for _, name := range wanted {
		for _, g := range rows {
			if slug.Matches(name, g.Name) {
				result = append(result, g)
				break
			}
		}
	}

	return result, nil
}

// SaveGenreArtists inserts the genre/artist pairs that are not present
// yet. Existing pairs are left untouched, making the call idempotent.
func (s *Saver) SaveGenreArtists(ctx context.Context, pairs []models.GenreArtist) error {
	if len(pairs) == 0 {
		return nil
	}

	genreIDs := make([]uint, 0, len(pairs))
	for _, p := range pairs {
		genreIDs = append(genreIDs, p.GenreID)
	}

	var existing []models.GenreArtist
	if err := s.db.WithContext(ctx).Where("genre_id IN ?", genreIDs).Find(&existing).Error; err != nil {
		return fmt.Errorf("failed to load genre associations: %w", err)
	}

	present := make(map[models.GenreArtist]struct{}, len(existing))
	for _, p := range existing {
		present[p] = struct{}{}
	}

	var missing []models.GenreArtist
	for _, p := range pairs {
		if _, ok := present[p]; ok {
			continue
		}
		present[p] = struct{}{}
		missing = append(missing, p)
	}
	if len(missing) == 0 {
		return nil
	}

	if err := s.db.WithContext(ctx).Create(&missing).Error; err != nil {
		return fmt.Errorf("failed to insert genre associations: %w", err)
	}
	return nil
}

// InsertMissingArtists inserts the incoming artists that exist neither
// in the incoming batch already (duplicates under the matcher) nor in
// the local store, then returns the rows for the whole batch.
func (s *Saver) InsertMissingArtists(ctx context.Context, incoming []provider.TagArtist) ([]models.Artist, error) {
	kept := make([]provider.TagArtist, 0, len(incoming))
	keptNames := make([]string, 0, len(incoming))
	for _, a := range incoming {
		if slug.Normalize(a.Name) == "" || slug.ContainsName(a.Name, keptNames) {
			continue
		}
		kept = append(kept, a)
		keptNames = append(keptNames, a.Name)
	}
	if len(kept) == 0 {
		return nil, nil
	}

	var existing []models.Artist
	if err := s.db.WithContext(ctx).Select("id", "name").Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load artists: %w", err)
	}

	existingNames := make([]string, len(existing))
	for i, a := range existing {
		existingNames[i] = a.Name
	}

	var missing []models.Artist
	for _, a := range kept {
		if !slug.ContainsName(a.Name, existingNames) {
			missing = append(missing, models.Artist{Name: a.Name, ImageSmall: a.ImageSmall})
		}
	}
	if len(missing) > 0 {
		if err := s.db.WithContext(ctx).Create(&missing).Error; err != nil {
			return nil, fmt.Errorf("failed to insert artists: %w", err)
		}
	}

	// Reload so callers get full rows for both old and new artists.
	var all []models.Artist
	if err := s.db.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to reload artists: %w", err)
	}

	result := make([]models.Artist, 0, len(keptNames))
	for _, name := range keptNames {
		for _, a := range all {
			if slug.Matches(name, a.Name) {
				result = append(result, a)
				break
			}
		}
	}

	return result, nil
}

// SaveAlbums merges the fetched album payloads into the store. With an
// existingID the first payload updates that album in place; otherwise
// each payload inserts a new album linked to artist (or a compilation
// when artist is nil), skipping payloads whose name already exists for
// that artist. One failed record never aborts the rest; the returned
// results expose partial success.
func (s *Saver) SaveAlbums(ctx context.Context, albums []provider.Album, artist *models.Artist, existingID uint) []SaveResult {
	if len(albums) == 0 {
		return nil
	}

	if existingID != 0 {
		first := albums[0]
		err := s.db.WithContext(ctx).Model(&models.Album{ID: existingID}).Updates(map[string]any{
			"name":               first.Name,
			"release_date":       first.ReleaseDate,
			"image":              first.Image,
			"spotify_popularity": first.Popularity,
		}).Error
		return []SaveResult{{Name: first.Name, Err: err}}
	}

	var artistID uint
	if artist != nil {
		artistID = artist.ID
	}

	var existing []models.Album
	if err := s.db.WithContext(ctx).Where("artist_id = ?", artistID).Find(&existing).Error; err != nil {
		results := make([]SaveResult, len(albums))
		for i, a := range albums {
			results[i] = SaveResult{Name: a.Name, Err: err}
		}
		return results
	}

	taken := make([]string, len(existing))
	for i, a := range existing {
		taken[i] = a.Name
	}

	results := make([]SaveResult, 0, len(albums))
	for _, a := range albums {
		if slug.Normalize(a.Name) == "" {
			results = append(results, SaveResult{Name: a.Name, Err: fmt.Errorf("album name is empty after normalization")})
			continue
		}
		if slug.ContainsName(a.Name, taken) {
			results = append(results, SaveResult{Name: a.Name})
			continue
		}

		row := models.Album{
			Name:              a.Name,
			ArtistID:          artistID,
			ReleaseDate:       a.ReleaseDate,
			Image:             a.Image,
			SpotifyPopularity: a.Popularity,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			results = append(results, SaveResult{Name: a.Name, Err: err})
			continue
		}

		taken = append(taken, a.Name)
		results = append(results, SaveResult{Name: a.Name, Created: true})
	}

	return results
}

// SaveTracks replaces album's track rows from the first payload that
// matches it by name and has tracks, then marks the album fully scraped.
// It is a no-op when no payload matches.
func (s *Saver) SaveTracks(ctx context.Context, albums []provider.Album, album *models.Album) error {
	var source *provider.Album
	for i := range albums {
		if slug.Matches(albums[i].Name, album.Name) && len(albums[i].Tracks) > 0 {
			source = &albums[i]
			break
		}
	}
	if source == nil {
		return nil
	}

	if err := s.db.WithContext(ctx).Where("album_id = ?", album.ID).Delete(&models.Track{}).Error; err != nil {
		return fmt.Errorf("failed to clear tracks: %w", err)
	}

	rows := make([]models.Track, len(source.Tracks))
	for i, t := range source.Tracks {
		rows[i] = models.Track{
			AlbumID:  album.ID,
			Name:     t.Name,
			Number:   t.Number,
			Duration: t.Duration,
			Artists:  t.Artists,
		}
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert tracks: %w", err)
	}

	album.FullyScraped = true
	if err := s.db.WithContext(ctx).Model(album).Update("fully_scraped", true).Error; err != nil {
		return fmt.Errorf("failed to mark album scraped: %w", err)
	}

	return nil
}

// SaveArtist ingests a full artist payload: the artist row, its genres
// and associations, all albums and their tracks. The call is synchronous;
// when it returns, the artist's discography is queryable.
func (s *Saver) SaveArtist(ctx context.Context, full *provider.ArtistFull) (*models.Artist, error) {
	if slug.Normalize(full.Name) == "" {
		return nil, fmt.Errorf("artist name is empty after normalization")
	}

	artist, err := s.findArtistByName(ctx, full.Name)
	if err != nil {
		return nil, err
	}

	if artist == nil {
		artist = &models.Artist{Name: full.Name}
		if err := s.db.WithContext(ctx).Create(artist).Error; err != nil {
			return nil, fmt.Errorf("failed to insert artist: %w", err)
		}
	}

	artist.ImageSmall = full.ImageSmall
	artist.ImageLarge = full.ImageLarge
	artist.SpotifyPopularity = full.Popularity

	if len(full.Genres) > 0 {
		genres, err := s.SaveOrUpdateGenres(ctx, full.Genres)
		if err != nil {
			return nil, err
		}

		pairs := make([]models.GenreArtist, len(genres))
		for i, g := range genres {
			pairs[i] = models.GenreArtist{GenreID: g.ID, ArtistID: artist.ID}
		}
		if err := s.SaveGenreArtists(ctx, pairs); err != nil {
			return nil, err
		}
	}

	for _, result := range s.SaveAlbums(ctx, full.Albums, artist, 0) {
		if result.Err != nil {
			s.logger.Warn("Album merge failed during artist ingestion",
				zap.String("artist", full.Name),
				zap.String("album", result.Name),
				zap.Error(result.Err))
		}
	}

	var albums []models.Album
	if err := s.db.WithContext(ctx).Where("artist_id = ?", artist.ID).Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("failed to load artist albums: %w", err)
	}
	for i := range albums {
		if err := s.SaveTracks(ctx, full.Albums, &albums[i]); err != nil {
			s.logger.Warn("Track merge failed during artist ingestion",
				zap.String("artist", full.Name),
				zap.String("album", albums[i].Name),
				zap.Error(err))
		}
	}

	artist.FullyScraped = true
	if err := s.db.WithContext(ctx).Save(artist).Error; err != nil {
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	return artist, nil
}

// findArtistByName resolves an artist under canonical-name equality:
// exact match first, matcher scan as fallback.
func (s *Saver) findArtistByName(ctx context.Context, name string) (*models.Artist, error) {
	var artist models.Artist
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&artist).Error
	if err == nil {
		return &artist, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to look up artist: %w", err)
	}

	var candidates []models.Artist
	if err := s.db.WithContext(ctx).Select("id", "name").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to scan artists: %w", err)
	}
	for _, c := range candidates {
		if slug.Matches(name, c.Name) {
			if err := s.db.WithContext(ctx).First(&artist, c.ID).Error; err != nil {
				return nil, fmt.Errorf("failed to load artist: %w", err)
			}
			return &artist, nil
		}
	}

	return nil, nil
}
