package provider_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"music-catalog/core/provider"
)

func TestSettingsPolicies(t *testing.T) {
	s := provider.Settings{DataProvider: "spotify", GenreProvider: "last.fm"}
	assert.True(t, s.ExternalCatalog())
	assert.True(t, s.LastfmGenres())

	s = provider.Settings{DataProvider: "local", GenreProvider: "local"}
	assert.False(t, s.ExternalCatalog())
	assert.False(t, s.LastfmGenres())
}

func TestSettingsHomepageGenreList(t *testing.T) {
	s := provider.Settings{HomepageGenres: "Rock, Electronic , Jazz,,"}
	assert.Equal(t, []string{"Rock", "Electronic", "Jazz"}, s.HomepageGenreList())

	s = provider.Settings{HomepageGenres: "  "}
	assert.Nil(t, s.HomepageGenreList())
}

func TestSettingsHomepageTTL(t *testing.T) {
	s := provider.Settings{HomepageUpdateInterval: 2}
	assert.Equal(t, 48*time.Hour, s.HomepageTTL())

	// Zero falls back to the default interval.
	s = provider.Settings{}
	assert.Equal(t, 7*24*time.Hour, s.HomepageTTL())
}
