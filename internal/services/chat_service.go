package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"knowledgechat/internal/events"
	"knowledgechat/internal/models"
	"knowledgechat/internal/monitor"
	"knowledgechat/internal/project"
	"knowledgechat/internal/router"
	"knowledgechat/internal/sandbox"
)

var (
	ErrEmptyPrompt        = errors.New("prompt is empty")
	ErrGenerationInFlight = errors.New("a generation is already in flight")
)

// StudioGenerator is the streaming contract the orchestrator depends on.
// Each onChunk call delivers the full cumulative text so far, never a delta.
type StudioGenerator interface {
	GenerateStudioResponse(ctx context.Context, prompt string, onChunk func(cumulative string)) (string, error)
}

// ChatService owns the conversation transcript and the current project. One
// turn may be in flight at a time; a second submission while generating is
// rejected outright, not queued.
type ChatService struct {
	ctx         context.Context
	generator   StudioGenerator
	logger      *monitor.Logger
	watcher     *monitor.Watcher
	settings    AppSettingsService
	deployments *DeploymentService

	mu         sync.Mutex
	messages   []models.ChatMessage
	project    []models.ProjectFile
	selected   string
	activeTool router.ToolID
	generating bool
	cancelTurn context.CancelFunc
}

func NewChatService(generator StudioGenerator, logger *monitor.Logger, settings AppSettingsService, deployments *DeploymentService) *ChatService {
	return &ChatService{
		generator:   generator,
		logger:      logger,
		watcher:     monitor.NewWatcher(logger),
		settings:    settings,
		deployments: deployments,
		activeTool:  router.ToolChat,
	}
}

func (s *ChatService) Startup(ctx context.Context) error {
	s.ctx = ctx
	if s.generator == nil {
		return fmt.Errorf("studio generator not configured")
	}
	if s.logger == nil {
		return fmt.Errorf("monitor logger not configured")
	}
	return nil
}

// SendMessage runs one full conversational turn: append the user message and
// a streaming AI placeholder, stream the response (each chunk wholesale
// replaces the placeholder content), then route intent, extract a project
// and finalize the message. It blocks until the turn reaches Idle again; the
// generating gate is cleared on every path.
func (s *ChatService) SendMessage(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyPrompt
	}

	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	s.generating = true

	turnCtx, cancel := context.WithCancel(s.baseContext())
	s.cancelTurn = cancel

	aiID := uuid.NewString()
	s.messages = append(s.messages,
		models.ChatMessage{ID: uuid.NewString(), Role: models.RoleUser, Content: text, Type: models.ContentText},
		models.ChatMessage{ID: aiID, Role: models.RoleAI, Content: "", Type: models.ContentText, IsStreaming: true},
	)
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.generating = false
		s.cancelTurn = nil
		s.mu.Unlock()
	}()

	turnCtx = events.WithTurn(turnCtx, aiID)

	full, err := s.generator.GenerateStudioResponse(turnCtx, text, func(cumulative string) {
		s.replaceMessageContent(aiID, cumulative)
		evt := events.NewInfo("")
		evt.Metadata = map[string]string{"messageId": aiID}
		events.Emit(turnCtx, events.ChatChunk, evt)
	})
	if err != nil {
		s.logger.Log(models.LogError, "Studio Kernel Link Failure. Retrying sync...")
		return fmt.Errorf("generate studio response: %w", err)
	}

	// Intent is routed from the original user text, not the response.
	if tool := router.Route(text); tool != router.ToolChat {
		s.mu.Lock()
		s.activeTool = tool
		s.mu.Unlock()
		evt := events.NewInfo(string(tool))
		events.Emit(turnCtx, events.ToolSwitch, evt)
	}

	files := project.Extract(full)
	isProject := len(files) > 0

	s.mu.Lock()
	for i := range s.messages {
		if s.messages[i].ID != aiID {
			continue
		}
		s.messages[i].Content = full
		s.messages[i].IsStreaming = false
		if isProject {
			s.messages[i].Type = models.ContentProject
			s.messages[i].Metadata = &models.MessageMetadata{Files: files}
		} else {
			s.messages[i].Type = models.ContentText
		}
		break
	}
	if isProject {
		s.project = files
		s.selected = files[0].Path
	}
	s.mu.Unlock()

	if isProject {
		s.logger.Log(models.LogSystem, fmt.Sprintf("Core Engine: Deployed %d files successfully.", len(files)))
		s.watcher.Watch(files)
		if s.deployments != nil {
			if _, recordErr := s.deployments.Record(aiID, files); recordErr != nil {
				s.logger.Log(models.LogWarn, fmt.Sprintf("Deployment history not recorded: %v", recordErr))
			}
		}
	}

	events.Emit(turnCtx, events.ChatDone, events.NewSuccess(fmt.Sprintf("turn %s complete", aiID)))
	return nil
}

// CancelGeneration aborts the in-flight turn, if any. The turn fails with a
// provider error and the generating gate is cleared by SendMessage's defer.
func (s *ChatService) CancelGeneration() {
	s.mu.Lock()
	cancel := s.cancelTurn
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *ChatService) IsGenerating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating
}

// Messages returns a copy of the transcript.
func (s *ChatService) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// CurrentProject returns a copy of the deployed project file set.
func (s *ChatService) CurrentProject() []models.ProjectFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ProjectFile, len(s.project))
	copy(out, s.project)
	return out
}

func (s *ChatService) ActiveTool() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.activeTool)
}

func (s *ChatService) SetActiveTool(tool string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTool = router.ToolID(tool)
}

// SelectFile marks a project file as active in the explorer.
func (s *ChatService) SelectFile(path string) (*models.ProjectFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project {
		if s.project[i].Path == path {
			s.selected = path
			f := s.project[i]
			return &f, nil
		}
	}
	return nil, fmt.Errorf("file %s is not part of the current project", path)
}

func (s *ChatService) SelectedFile() *models.ProjectFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project {
		if s.project[i].Path == s.selected {
			f := s.project[i]
			return &f
		}
	}
	return nil
}

// RenderPreview builds the sanitized sandbox document for the current
// project using the active locale's text direction.
func (s *ChatService) RenderPreview() string {
	direction := "rtl"
	if s.settings != nil {
		direction = s.settings.Direction()
	}
	return sandbox.Render(s.CurrentProject(), direction)
}

// Validation recomputes the validation result for the current project.
func (s *ChatService) Validation() models.ValidationResult {
	return monitor.Validate(s.CurrentProject())
}

// MonitorFeed returns the sidebar's log window.
func (s *ChatService) MonitorFeed() []models.LogEntry {
	return s.logger.Tail(monitor.DisplayWindow)
}

func (s *ChatService) replaceMessageContent(id, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Content = content
			return
		}
	}
}

func (s *ChatService) baseContext() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}
