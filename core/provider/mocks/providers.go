package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"music-catalog/core/provider"
)

// Catalog is a mock implementation of provider.Catalog.
type Catalog struct {
	mock.Mock
}

func (m *Catalog) GetAlbum(ctx context.Context, artistName, albumName string) (*provider.AlbumLookup, error) {
	args := m.Called(ctx, artistName, albumName)
	if lookup, ok := args.Get(0).(*provider.AlbumLookup); ok {
		return lookup, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Catalog) GetArtist(ctx context.Context, name string) (*provider.ArtistFull, error) {
	args := m.Called(ctx, name)
	if artist, ok := args.Get(0).(*provider.ArtistFull); ok {
		return artist, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Catalog) NewReleases(ctx context.Context) ([]provider.Album, error) {
	args := m.Called(ctx)
	if albums, ok := args.Get(0).([]provider.Album); ok {
		return albums, args.Error(1)
	}
	return nil, args.Error(1)
}

// Tags is a mock implementation of provider.Tags.
type Tags struct {
	mock.Mock
}

func (m *Tags) TopTags(ctx context.Context) ([]provider.Tag, error) {
	args := m.Called(ctx)
	if tags, ok := args.Get(0).([]provider.Tag); ok {
		return tags, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Tags) TopArtists(ctx context.Context, tag string, limit int) ([]provider.TagArtist, error) {
	args := m.Called(ctx, tag, limit)
	if artists, ok := args.Get(0).([]provider.TagArtist); ok {
		return artists, args.Error(1)
	}
	return nil, args.Error(1)
}
