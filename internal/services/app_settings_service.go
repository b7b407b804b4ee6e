package services

import (
	"context"
	"errors"

	"knowledgechat/internal/models"
	"knowledgechat/internal/repositories"
)

type AppSettingsService interface {
	Startup(ctx context.Context)
	Get() (*models.AppSettings, error)
	Update(theme, locale string) (*models.AppSettings, error)
	Direction() string
}

type appSettingsService struct {
	appSettings repositories.AppSettingsRepository
	ctx         context.Context
}

func NewAppSettingsService(appSettings repositories.AppSettingsRepository) AppSettingsService {
	return &appSettingsService{appSettings: appSettings}
}

func (s *appSettingsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *appSettingsService) Get() (*models.AppSettings, error) {
	return s.appSettings.Get(context.Background())
}

func (s *appSettingsService) Update(theme, locale string) (*models.AppSettings, error) {
	if theme == "" {
		return nil, errors.New("theme is required")
	}
	if locale == "" {
		return nil, errors.New("locale is required")
	}
	if theme != "light" && theme != "dark" && theme != "system" {
		return nil, errors.New("theme must be 'light', 'dark', or 'system'")
	}
	if locale != "en" && locale != "ar" {
		return nil, errors.New("locale must be 'en' or 'ar'")
	}

	current, err := s.appSettings.Get(context.Background())
	if err != nil {
		return nil, err
	}

	current.Theme = theme
	current.Locale = locale

	if err := s.appSettings.Update(context.Background(), current); err != nil {
		return nil, err
	}

	return current, nil
}

// Direction reports the preview text direction for the active locale,
// defaulting to rtl (the studio ships Arabic-first).
func (s *appSettingsService) Direction() string {
	settings, err := s.Get()
	if err != nil {
		return "rtl"
	}
	return settings.Direction()
}
