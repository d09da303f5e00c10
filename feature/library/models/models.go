package models

// Artist is a music artist row. Name is unique under canonical-name
// equality; the save layer enforces that through the matcher, the
// schema index backstops exact duplicates.
type Artist struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"size:255;uniqueIndex" json:"name"`
	ImageSmall        string `gorm:"size:512" json:"image_small"`
	ImageLarge        string `gorm:"size:512" json:"image_large"`
	SpotifyPopularity int    `json:"spotify_popularity"`
	// FullyScraped is true once all of the artist's albums and tracks
	// have been ingested from the catalog provider.
	FullyScraped bool `json:"fully_scraped"`

	Albums []Album `gorm:"foreignKey:ArtistID" json:"albums,omitempty"`
	Genres []Genre `gorm:"many2many:genre_artist" json:"genres,omitempty"`
}

// Album is an album row. ArtistID 0 marks a compilation ("Various
// Artists") that no single artist owns; a compilation may share its name
// with an album under a real artist, the (name, artist_id) pair stays
// unique.
type Album struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"size:255;uniqueIndex:idx_albums_name_artist" json:"name"`
	ArtistID          uint   `gorm:"uniqueIndex:idx_albums_name_artist" json:"artist_id"`
	ReleaseDate       string `gorm:"size:32" json:"release_date"`
	Image             string `gorm:"size:512" json:"image"`
	SpotifyPopularity int    `json:"spotify_popularity"`
	// FullyScraped is true once the album's track list has been ingested.
	FullyScraped bool `json:"fully_scraped"`

	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Tracks []Track `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"tracks,omitempty"`
}

// Complete reports whether the album has usable local data: a fully
// scraped album with at least one track needs no provider refetch.
func (a *Album) Complete() bool {
	return a.FullyScraped && len(a.Tracks) > 0
}

// Track is a track row owned by an album and deleted with it.
type Track struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	AlbumID uint   `gorm:"index" json:"album_id"`
	Name    string `gorm:"size:255" json:"name"`
	// Number is the track position within the album.
	Number int `json:"number"`
	// Duration is the track length in milliseconds.
	Duration int `json:"duration"`
	// Artists is the display string of performing artists, kept
	// denormalized for compilation tracks.
	Artists string `gorm:"size:512" json:"artists"`
}

// Genre is a genre row, unique under canonical-name equality.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;uniqueIndex" json:"name"`

	Artists []Artist `gorm:"many2many:genre_artist" json:"artists,omitempty"`
}

// GenreArtist is the genre/artist association row. The save layer uses
// it directly for idempotent pair inserts.
type GenreArtist struct {
	GenreID  uint `gorm:"primaryKey" json:"genre_id"`
	ArtistID uint `gorm:"primaryKey" json:"artist_id"`
}

// TableName matches the join table used by the many2many relations.
func (GenreArtist) TableName() string {
	return "genre_artist"
}

// All returns every model for migration, parents before children.
func All() []any {
	return []any{&Artist{}, &Album{}, &Track{}, &Genre{}, &GenreArtist{}}
}
