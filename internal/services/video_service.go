package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"knowledgechat/internal/events"
	"knowledgechat/internal/llm/video"
	"knowledgechat/internal/models"
	"knowledgechat/internal/monitor"
)

// VideoGenerator abstracts the long-running synthesis call so tests can
// stand in for the real backend.
type VideoGenerator interface {
	GenerateVideo(ctx context.Context, prompt string, cfg video.GenerateConfig) (string, error)
}

type VideoService interface {
	Startup(ctx context.Context)
	Generate(prompt string) (*models.ChatMessage, error)
}

type videoService struct {
	generator VideoGenerator
	logger    *monitor.Logger
	ctx       context.Context
}

func NewVideoService(generator VideoGenerator, logger *monitor.Logger) VideoService {
	return &videoService{generator: generator, logger: logger}
}

func (s *videoService) Startup(ctx context.Context) {
	s.ctx = ctx
}

// Generate runs a synthesis job to completion and wraps the resulting URI in
// a video message. The job can take minutes; status is pushed over the
// VideoStatus event as it moves.
func (s *videoService) Generate(prompt string) (*models.ChatMessage, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.New("prompt is empty")
	}
	if s.generator == nil {
		return nil, errors.New("video generator not configured")
	}

	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	s.logger.Log(models.LogSystem, "Video synthesis started.")
	events.Emit(ctx, events.VideoStatus, events.NewInfo("synthesis started"))

	uri, err := s.generator.GenerateVideo(ctx, prompt, video.GenerateConfig{})
	if err != nil {
		s.logger.Log(models.LogError, fmt.Sprintf("Video synthesis failed: %v", err))
		events.Emit(ctx, events.VideoStatus, events.NewError("synthesis failed"))
		return nil, fmt.Errorf("generate video: %w", err)
	}

	s.logger.Log(models.LogSystem, "Video synthesis complete.")
	events.Emit(ctx, events.VideoStatus, events.NewSuccess("synthesis complete"))

	return &models.ChatMessage{
		ID:       uuid.NewString(),
		Role:     models.RoleAI,
		Content:  fmt.Sprintf("Here is your generated video for: %s", prompt),
		Type:     models.ContentVideo,
		Metadata: &models.MessageMetadata{VideoURL: uri},
	}, nil
}
