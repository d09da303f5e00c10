package provider

// Track is a normalized track payload from the catalog provider.
type Track struct {
	Name string `json:"name"`
	// Number is the track's position within its album.
	Number int `json:"number"`
	// Duration is the track length in milliseconds.
	Duration int `json:"duration"`
	// Artists is the display string of the performing artists.
	Artists string `json:"artists"`
}

// Album is a normalized album payload from the catalog provider.
type Album struct {
	Name        string  `json:"name"`
	ReleaseDate string  `json:"release_date"`
	Image       string  `json:"image"`
	Popularity  int     `json:"popularity"`
	Tracks      []Track `json:"tracks"`
}

// Artist is a normalized artist payload from the catalog provider.
type Artist struct {
	Name       string   `json:"name"`
	ImageSmall string   `json:"image_small"`
	ImageLarge string   `json:"image_large"`
	Popularity int      `json:"popularity"`
	Genres     []string `json:"genres"`
}

// AlbumLookup is the catalog provider's response to an album-by-name
// request: the matched artist (nil for compilations) and one or more
// album entries, the first being the primary match.
type AlbumLookup struct {
	Artist *Artist `json:"artist"`
	Albums []Album `json:"album"`
}

// ArtistFull is a complete artist payload including the artist's albums
// with their tracks. Ingesting one materializes the whole discography.
type ArtistFull struct {
	Artist
	Albums []Album `json:"albums"`
}

// Tag is a genre tag with its popularity count.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TagArtist is an artist entry from a per-genre top-artists listing.
type TagArtist struct {
	Name       string `json:"name"`
	ImageSmall string `json:"image_small"`
}
