package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeAsset(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	assert.NoError(t, os.WriteFile(path, []byte("data"), 0644))
}

func TestAssetService_SeededCatalogue(t *testing.T) {
	service := NewAssetService("")
	assert.NoError(t, service.Startup(context.Background()))

	all := service.List("all")
	assert.Len(t, all, 6)
	assert.Len(t, service.List("icon"), 2)
	assert.Len(t, service.List("bg"), 2)
	assert.Len(t, service.List("ui"), 2)
}

func TestAssetService_RecursiveScan(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "icons", "logo.png")
	writeAsset(t, dir, "backgrounds", "nested", "sky.jpg")
	writeAsset(t, dir, "panels", "card.webp")
	writeAsset(t, dir, "notes.txt")

	service := NewAssetService(dir)
	assert.NoError(t, service.Startup(context.Background()))

	all := service.List("all")
	// 6 seeded plus 3 scanned images; the text file is skipped.
	assert.Len(t, all, 9)

	icons := service.List("icon")
	assert.Len(t, icons, 3)

	found := false
	for _, a := range icons {
		if a.Name == "logo" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAssetService_RescanRebuilds(t *testing.T) {
	dir := t.TempDir()
	service := NewAssetService(dir)
	assert.NoError(t, service.Startup(context.Background()))
	assert.Len(t, service.List("all"), 6)

	writeAsset(t, dir, "icons", "new.svg")
	count, err := service.Rescan()
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, service.List("all"), 7)
}

func TestAssetService_Categories(t *testing.T) {
	assert.Equal(t, []string{"all", "icon", "bg", "ui"}, NewAssetService("").Categories())
}
