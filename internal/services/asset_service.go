package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/yargevad/filepathx"

	"knowledgechat/internal/models"
	"knowledgechat/internal/utils"
)

// imageExtensions are the file types the local scan picks up.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

type AssetService interface {
	Startup(ctx context.Context) error
	Categories() []string
	List(category string) []models.Asset
	Rescan() (int, error)
}

// assetService serves the built-in design catalogue plus any images found
// under the local asset directory. The local scan is recursive so nested
// collections are picked up.
type assetService struct {
	ctx      context.Context
	assetDir string

	mu     sync.Mutex
	seeded []models.Asset
	local  []models.Asset
}

func NewAssetService(assetDir string) AssetService {
	return &assetService{
		assetDir: assetDir,
		seeded: []models.Asset{
			{ID: "1", Type: "icon", URL: "https://cdn-icons-png.flaticon.com/512/3064/3064197.png", Name: "AI Core"},
			{ID: "2", Type: "bg", URL: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=400", Name: "Abstract Blue"},
			{ID: "3", Type: "ui", URL: "https://images.unsplash.com/photo-1558591710-4b4a1ae0f04d?w=400", Name: "Dark Panel"},
			{ID: "4", Type: "icon", URL: "https://cdn-icons-png.flaticon.com/512/4359/4359961.png", Name: "Vision"},
			{ID: "5", Type: "bg", URL: "https://images.unsplash.com/photo-1635776062127-d379bfcba9f8?w=400", Name: "Mesh Gradient"},
			{ID: "6", Type: "ui", URL: "https://images.unsplash.com/photo-1614850523296-d8c1af93d400?w=400", Name: "Glass Card"},
		},
	}
}

func (s *assetService) Startup(ctx context.Context) error {
	s.ctx = ctx
	if s.assetDir == "" || !utils.DirectoryExists(s.assetDir) {
		return nil
	}
	if _, err := s.Rescan(); err != nil {
		return fmt.Errorf("scan asset directory: %w", err)
	}
	return nil
}

func (s *assetService) Categories() []string {
	return []string{"all", "icon", "bg", "ui"}
}

func (s *assetService) List(category string) []models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Asset
	for _, a := range s.seeded {
		if category == "" || category == "all" || a.Type == category {
			out = append(out, a)
		}
	}
	for _, a := range s.local {
		if category == "" || category == "all" || a.Type == category {
			out = append(out, a)
		}
	}
	return out
}

// Rescan walks the asset directory recursively and rebuilds the local
// catalogue. Files are categorized by their parent directory name when it
// matches a known category, falling back to ui.
func (s *assetService) Rescan() (int, error) {
	if s.assetDir == "" {
		return 0, nil
	}

	matches, err := filepathx.Glob(filepath.Join(s.assetDir, "**", "*"))
	if err != nil {
		return 0, err
	}

	var local []models.Asset
	for _, match := range matches {
		if !imageExtensions[strings.ToLower(filepath.Ext(match))] {
			continue
		}
		local = append(local, models.Asset{
			ID:   uuid.NewString(),
			Type: categoryForDir(filepath.Base(filepath.Dir(match))),
			URL:  match,
			Name: strings.TrimSuffix(filepath.Base(match), filepath.Ext(match)),
		})
	}

	s.mu.Lock()
	s.local = local
	s.mu.Unlock()
	return len(local), nil
}

func categoryForDir(dir string) string {
	switch strings.ToLower(dir) {
	case "icon", "icons":
		return "icon"
	case "bg", "backgrounds":
		return "bg"
	default:
		return "ui"
	}
}
