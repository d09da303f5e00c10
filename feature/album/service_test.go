package album_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"music-catalog/core/apperr"
	"music-catalog/core/cache"
	"music-catalog/core/database"
	"music-catalog/core/provider"
	"music-catalog/core/provider/mocks"
	"music-catalog/feature/album"
	"music-catalog/feature/library"
	"music-catalog/feature/library/models"
)

func setupService(t *testing.T, catalog provider.Catalog, settings provider.Settings) (*album.Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	saver := library.NewSaver(db, zap.NewNop())
	svc := album.NewService(db, cache.New(), saver, catalog, settings, zap.NewNop())

	return svc, db
}

func TestGetAlbumLocalPolicyServesLocalOnly(t *testing.T) {
	svc, db := setupService(t, nil, provider.Settings{})
	ctx := context.Background()

	_, err := svc.GetAlbum(ctx, "Radiohead", "OK Computer")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	artist := models.Artist{Name: "Radiohead"}
	require.NoError(t, db.Create(&artist).Error)
	require.NoError(t, db.Create(&models.Album{Name: "OK Computer", ArtistID: artist.ID}).Error)

	// Even an incomplete row is served when no catalog client exists.
	got, err := svc.GetAlbum(ctx, "Radiohead", "OK Computer")
	require.NoError(t, err)
	assert.Equal(t, "OK Computer", got.Name)
	assert.Empty(t, got.Tracks)
}

func TestGetAlbumCompilationBranch(t *testing.T) {
	catalog := new(mocks.Catalog)
	svc, db := setupService(t, catalog, provider.Settings{})
	ctx := context.Background()

	// No pre-existing compilation row: not found, provider untouched.
	_, err := svc.GetAlbum(ctx, "Various Artists", "Now That's What I Call Music")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	catalog.AssertNotCalled(t, "GetAlbum", mock.Anything, mock.Anything, mock.Anything)

	compilation := models.Album{Name: "Now That's What I Call Music", ArtistID: 0, FullyScraped: true}
	require.NoError(t, db.Create(&compilation).Error)
	require.NoError(t, db.Create(&models.Track{AlbumID: compilation.ID, Name: "Opener", Number: 1}).Error)

	// Both spellings resolve to the same row.
	byName, err := svc.GetAlbum(ctx, "Various Artists", "Now That's What I Call Music")
	require.NoError(t, err)
	byEmpty, err := svc.GetAlbum(ctx, "", "Now That's What I Call Music")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byEmpty.ID)
	assert.EqualValues(t, 0, byName.ArtistID)
}

func TestGetAlbumIngestsUnknownArtist(t *testing.T) {
	catalog := new(mocks.Catalog)
	svc, db := setupService(t, catalog, provider.Settings{})
	ctx := context.Background()

	lookup := &provider.AlbumLookup{
		Artist: &provider.Artist{Name: "Radiohead"},
		Albums: []provider.Album{{
			Name:        "OK Computer",
			ReleaseDate: "1997-05-21",
			Tracks:      []provider.Track{{Name: "Airbag", Number: 1}},
		}},
	}
	full := &provider.ArtistFull{
		Artist: provider.Artist{Name: "Radiohead", Popularity: 82, Genres: []string{"Rock"}},
		Albums: []provider.Album{
			{
				Name:        "OK Computer",
				ReleaseDate: "1997-05-21",
				Tracks: []provider.Track{
					{Name: "Airbag", Number: 1},
					{Name: "Paranoid Android", Number: 2},
				},
			},
			{
				Name:        "Kid A",
				ReleaseDate: "2000-10-02",
				Tracks:      []provider.Track{{Name: "Everything in Its Right Place", Number: 1}},
			},
		},
	}

	catalog.On("GetAlbum", mock.Anything, "Radiohead", "OK Computer").Return(lookup, nil).Once()
	catalog.On("GetArtist", mock.Anything, "Radiohead").Return(full, nil).Once()

	got, err := svc.GetAlbum(ctx, "Radiohead", "OK Computer")
	require.NoError(t, err)
	assert.True(t, got.FullyScraped)
	assert.Len(t, got.Tracks, 2)
	require.NotNil(t, got.Artist)
	assert.Equal(t, "Radiohead", got.Artist.Name)

	// The whole discography landed, not just the requested album.
	var albumCount int64
	db.Model(&models.Album{}).Count(&albumCount)
	assert.EqualValues(t, 2, albumCount)

	// A second lookup is answered from the local store.
	_, err = svc.GetAlbum(ctx, "Radiohead", "OK Computer")
	require.NoError(t, err)
	catalog.AssertExpectations(t)
	catalog.AssertNumberOfCalls(t, "GetAlbum", 1)
}

func TestGetAlbumMergesIntoExistingRow(t *testing.T) {
	catalog := new(mocks.Catalog)
	svc, db := setupService(t, catalog, provider.Settings{})
	ctx := context.Background()

	artist := models.Artist{Name: "Radiohead"}
	require.NoError(t, db.Create(&artist).Error)
	existing := models.Album{Name: "OK Computer", ArtistID: artist.ID}
	require.NoError(t, db.Create(&existing).Error)

	lookup := &provider.AlbumLookup{
		Albums: []provider.Album{{
			Name:        "OK Computer",
			ReleaseDate: "1997-05-21",
			Popularity:  90,
			Tracks:      []provider.Track{{Name: "Airbag", Number: 1}},
		}},
	}
	catalog.On("GetAlbum", mock.Anything, "Radiohead", "OK Computer").Return(lookup, nil).Once()

	got, err := svc.GetAlbum(ctx, "Radiohead", "OK Computer")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.True(t, got.FullyScraped)
	assert.Equal(t, "1997-05-21", got.ReleaseDate)
	assert.Len(t, got.Tracks, 1)
	catalog.AssertExpectations(t)
}

func TestGetAlbumServesStaleOnProviderFailure(t *testing.T) {
	catalog := new(mocks.Catalog)
	svc, db := setupService(t, catalog, provider.Settings{})
	ctx := context.Background()

	artist := models.Artist{Name: "Radiohead"}
	require.NoError(t, db.Create(&artist).Error)
	existing := models.Album{Name: "OK Computer", ArtistID: artist.ID}
	require.NoError(t, db.Create(&existing).Error)
	require.NoError(t, db.Create(&models.Track{AlbumID: existing.ID, Name: "Airbag", Number: 1}).Error)

	catalog.On("GetAlbum", mock.Anything, "Radiohead", "OK Computer").
		Return(nil, apperr.Provider("catalog provider unreachable", assert.AnError))

	got, err := svc.GetAlbum(ctx, "Radiohead", "OK Computer")
	require.NoError(t, err)
	assert.Len(t, got.Tracks, 1)
}

func TestGetAlbumProviderFailureWithNoUsableLocalData(t *testing.T) {
	catalog := new(mocks.Catalog)
	svc, _ := setupService(t, catalog, provider.Settings{})

	catalog.On("GetAlbum", mock.Anything, "Radiohead", "OK Computer").
		Return(nil, apperr.Provider("catalog provider unreachable", assert.AnError))

	_, err := svc.GetAlbum(context.Background(), "Radiohead", "OK Computer")
	assert.True(t, apperr.IsKind(err, apperr.KindProvider))
}

func TestGetAlbumTracklessProviderPayload(t *testing.T) {
	catalog := new(mocks.Catalog)
	svc, _ := setupService(t, catalog, provider.Settings{})

	lookup := &provider.AlbumLookup{
		Albums: []provider.Album{{Name: "OK Computer", ReleaseDate: "1997-05-21"}},
	}
	catalog.On("GetAlbum", mock.Anything, "Radiohead", "OK Computer").Return(lookup, nil)

	_, err := svc.GetAlbum(context.Background(), "Radiohead", "OK Computer")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetAlbumCollapsesWhitespace(t *testing.T) {
	svc, db := setupService(t, nil, provider.Settings{})

	artist := models.Artist{Name: "Daft Punk"}
	require.NoError(t, db.Create(&artist).Error)
	require.NoError(t, db.Create(&models.Album{Name: "Discovery", ArtistID: artist.ID}).Error)

	got, err := svc.GetAlbum(context.Background(), "  Daft   Punk ", " Discovery ")
	require.NoError(t, err)
	assert.Equal(t, "Discovery", got.Name)
}

func TestCreateAlbum(t *testing.T) {
	svc, db := setupService(t, nil, provider.Settings{})
	ctx := context.Background()

	_, err := svc.Create(ctx, album.CreateInput{Name: "Discovery", ArtistName: "Daft Punk"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict), "unknown artist must conflict")

	require.NoError(t, db.Create(&models.Artist{Name: "Daft Punk"}).Error)

	created, err := svc.Create(ctx, album.CreateInput{
		Name:        "Discovery",
		ArtistName:  "Daft Punk",
		ReleaseDate: "2001-03-12",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotZero(t, created.ArtistID)

	_, err = svc.Create(ctx, album.CreateInput{Name: "Discovery", ArtistName: "Daft Punk"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict), "duplicate name under artist must conflict")

	_, err = svc.Create(ctx, album.CreateInput{Name: "", ArtistName: "Daft Punk"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUpdateAlbumAppliesPartialChanges(t *testing.T) {
	svc, db := setupService(t, nil, provider.Settings{})
	ctx := context.Background()

	existing := models.Album{Name: "Discovery", ReleaseDate: "2001-01-01", SpotifyPopularity: 10}
	require.NoError(t, db.Create(&existing).Error)

	date := "2001-03-12"
	updated, err := svc.Update(ctx, existing.ID, album.UpdateInput{ReleaseDate: &date})
	require.NoError(t, err)
	assert.Equal(t, "2001-03-12", updated.ReleaseDate)
	assert.Equal(t, "Discovery", updated.Name)

	_, err = svc.Update(ctx, 999, album.UpdateInput{})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteAlbumsRemovesTracks(t *testing.T) {
	svc, db := setupService(t, nil, provider.Settings{})

	a := models.Album{Name: "Discovery"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&models.Track{AlbumID: a.ID, Name: "One More Time", Number: 1}).Error)

	deleted, err := svc.Delete(context.Background(), []uint{a.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	var trackCount int64
	db.Model(&models.Track{}).Count(&trackCount)
	assert.EqualValues(t, 0, trackCount)
}

func TestTopAlbumsRequiresFiveTracksAndCaches(t *testing.T) {
	settings := provider.Settings{HomepageUpdateInterval: 7}
	svc, db := setupService(t, nil, settings)
	ctx := context.Background()

	full := models.Album{Name: "Discovery", SpotifyPopularity: 80}
	require.NoError(t, db.Create(&full).Error)
	for i := 1; i <= 5; i++ {
		require.NoError(t, db.Create(&models.Track{AlbumID: full.ID, Name: "Track", Number: i}).Error)
	}
	thin := models.Album{Name: "Single", SpotifyPopularity: 99}
	require.NoError(t, db.Create(&thin).Error)
	require.NoError(t, db.Create(&models.Track{AlbumID: thin.ID, Name: "Only One", Number: 1}).Error)

	albums, err := svc.TopAlbums(ctx)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Discovery", albums[0].Name)

	// A later insert is not visible until the cache expires.
	another := models.Album{Name: "Homework", SpotifyPopularity: 70}
	require.NoError(t, db.Create(&another).Error)
	for i := 1; i <= 5; i++ {
		require.NoError(t, db.Create(&models.Track{AlbumID: another.ID, Name: "Track", Number: i}).Error)
	}

	albums, err = svc.TopAlbums(ctx)
	require.NoError(t, err)
	assert.Len(t, albums, 1)
}

func TestLatestAlbumsStrictUsesProvider(t *testing.T) {
	catalog := new(mocks.Catalog)
	settings := provider.Settings{LatestAlbumsStrict: true, HomepageUpdateInterval: 7}
	svc, _ := setupService(t, catalog, settings)

	releases := []provider.Album{
		{Name: "Fresh Drop", ReleaseDate: "2026-08-28", Popularity: 55},
	}
	catalog.On("NewReleases", mock.Anything).Return(releases, nil).Once()

	albums, err := svc.LatestAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Fresh Drop", albums[0].Name)

	// Cached: the provider is not asked again.
	_, err = svc.LatestAlbums(context.Background())
	require.NoError(t, err)
	catalog.AssertNumberOfCalls(t, "NewReleases", 1)
}

func TestLatestAlbumsLocalOrdersByReleaseDate(t *testing.T) {
	svc, db := setupService(t, nil, provider.Settings{})

	artist := models.Artist{Name: "Daft Punk"}
	require.NoError(t, db.Create(&artist).Error)
	require.NoError(t, db.Create(&models.Album{Name: "Homework", ArtistID: artist.ID, ReleaseDate: "1997-01-20"}).Error)
	require.NoError(t, db.Create(&models.Album{Name: "Discovery", ArtistID: artist.ID, ReleaseDate: "2001-03-12"}).Error)

	albums, err := svc.LatestAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "Discovery", albums[0].Name)
}
