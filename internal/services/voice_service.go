package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"knowledgechat/internal/models"
)

// progressStep is how much a dubbing job advances per poll, mirroring the
// studio's simulated pipeline.
const progressStep = 2

type VoiceService interface {
	Startup(ctx context.Context)
	Languages() []string
	Styles() []string
	StartDubbing(language, style string) (*models.DubbingJob, error)
	Advance(id string) (*models.DubbingJob, error)
	Job(id string) (*models.DubbingJob, error)
}

type voiceService struct {
	ctx context.Context

	mu   sync.Mutex
	jobs map[string]*models.DubbingJob
}

func NewVoiceService() VoiceService {
	return &voiceService{jobs: make(map[string]*models.DubbingJob)}
}

func (s *voiceService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *voiceService) Languages() []string {
	return []string{"English (US)", "Arabic (Saudi)", "French", "Spanish"}
}

func (s *voiceService) Styles() []string {
	return []string{"Natural", "Documentary", "Energetic", "Calm"}
}

func (s *voiceService) StartDubbing(language, style string) (*models.DubbingJob, error) {
	if language == "" {
		return nil, errors.New("dubbing language is required")
	}
	job := &models.DubbingJob{ID: uuid.NewString(), Language: language, Style: style}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	out := *job
	return &out, nil
}

// Advance moves the job forward one step; at 100 it is marked done.
func (s *voiceService) Advance(id string) (*models.DubbingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, errors.New("dubbing job not found: " + id)
	}
	if !job.Done {
		job.Progress += progressStep
		if job.Progress >= 100 {
			job.Progress = 100
			job.Done = true
		}
	}
	out := *job
	return &out, nil
}

func (s *voiceService) Job(id string) (*models.DubbingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, errors.New("dubbing job not found: " + id)
	}
	out := *job
	return &out, nil
}
