package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppStoreService_BrowseAll(t *testing.T) {
	service := NewAppStoreService()
	assert.Len(t, service.Browse("all", ""), 6)
	assert.Len(t, service.Browse("", ""), 6)
}

func TestAppStoreService_BrowseByCategory(t *testing.T) {
	service := NewAppStoreService()

	ai := service.Browse("ai", "")
	assert.Len(t, ai, 2)
	for _, app := range ai {
		assert.Equal(t, "ai", app.Category)
	}

	assert.Len(t, service.Browse("games", ""), 1)
	assert.Empty(t, service.Browse("music", ""))
}

func TestAppStoreService_BrowseByQuery(t *testing.T) {
	service := NewAppStoreService()

	hits := service.Browse("all", "pixel")
	assert.Len(t, hits, 1)
	assert.Equal(t, "PixelQuest", hits[0].Name)

	assert.Empty(t, service.Browse("all", "notthere"))
}

func TestAppStoreService_Install(t *testing.T) {
	service := NewAppStoreService()

	app, err := service.Install("3")
	assert.NoError(t, err)
	assert.True(t, app.Installed)

	// The catalogue reflects the install.
	for _, a := range service.Browse("web", "") {
		if a.ID == "3" {
			assert.True(t, a.Installed)
		}
	}

	_, err = service.Install("99")
	assert.Error(t, err)
}
