package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"knowledgechat/internal/models"
)

type AppStoreService interface {
	Startup(ctx context.Context)
	Categories() []string
	Browse(category, query string) []models.MarketApp
	Install(id string) (*models.MarketApp, error)
}

type appStoreService struct {
	ctx context.Context

	mu   sync.Mutex
	apps []models.MarketApp
}

func NewAppStoreService() AppStoreService {
	return &appStoreService{
		apps: []models.MarketApp{
			{ID: "1", Name: "NeuroFlow UI", Icon: "🧠", Category: "tools", Developer: "StudioAI", Rating: 4.9, Downloads: "12K", Description: "Next-gen glassmorphic components generator."},
			{ID: "2", Name: "Cinematic Gen v2", Icon: "🎬", Category: "ai", Developer: "VideoLabs", Rating: 4.8, Downloads: "50K", Description: "High-fidelity video synthesis orchestration."},
			{ID: "3", Name: "CyberDash", Icon: "⚡", Category: "web", Developer: "WebMaster", Rating: 4.7, Downloads: "5K", Description: "Performance optimized monitoring dashboard."},
			{ID: "4", Name: "AI Storyteller", Icon: "📖", Category: "ai", Developer: "GenNexus", Rating: 4.9, Downloads: "100K", Description: "Interactive long-form fiction generator."},
			{ID: "5", Name: "PixelQuest", Icon: "🎮", Category: "games", Developer: "PlayAI", Rating: 4.6, Downloads: "25K", Description: "Retro RPG built entirely with AI assets."},
			{ID: "6", Name: "VoiceSync Pro", Icon: "🎙️", Category: "tools", Developer: "AudioFlow", Rating: 4.8, Downloads: "8K", Description: "Professional dubbing and voice cloning tool."},
		},
	}
}

func (s *appStoreService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *appStoreService) Categories() []string {
	return []string{"all", "web", "tools", "ai", "games"}
}

// Browse filters the catalogue by category ("all" passes everything) and an
// optional case-insensitive name substring.
func (s *appStoreService) Browse(category, query string) []models.MarketApp {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.MarketApp
	for _, app := range s.apps {
		if category != "" && category != "all" && app.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(app.Name), query) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func (s *appStoreService) Install(id string) (*models.MarketApp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apps {
		if s.apps[i].ID == id {
			s.apps[i].Installed = true
			app := s.apps[i]
			return &app, nil
		}
	}
	return nil, errors.New("app not found: " + id)
}
