package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"knowledgechat/internal/events"
	"knowledgechat/internal/llm/client"
	"knowledgechat/internal/llm/video"
	"knowledgechat/internal/models"
	"knowledgechat/internal/monitor"
	"knowledgechat/internal/services"
)

// App struct
type App struct {
	ctx     context.Context
	logger  *monitor.Logger
	chat    *services.ChatService
	dbClose func() error

	unsubscribeFeed func()
}

// NewApp creates a new App application struct
func NewApp(logger *monitor.Logger, chat *services.ChatService) *App {
	return &App{logger: logger, chat: chat}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	events.EnableRuntimeEmitter()

	// Mirror the monitor feed to the webview so the sidebar console
	// updates live.
	a.unsubscribeFeed = a.logger.Subscribe(func(entry models.LogEntry) {
		evt := events.NewInfo(entry.Message)
		evt.Metadata = map[string]string{"level": string(entry.Level), "timestamp": entry.Timestamp}
		events.Emit(ctx, events.MonitorLog, evt)
	})

	a.logger.Log(models.LogSystem, "Studio core initialized.")
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	a.chat.CancelGeneration()

	if a.unsubscribeFeed != nil {
		a.unsubscribeFeed()
		a.unsubscribeFeed = nil
	}

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// newStudioGenerator picks the first provider with a configured key. Gemini
// is the default backend; OpenAI and Anthropic are fallbacks.
func newStudioGenerator(ctx context.Context, keys *services.KeyringService) (*client.LLMClient, error) {
	if key, err := keys.GetApiKey("gemini"); err == nil && key != "" {
		return client.NewGeminiClient(ctx, key, client.GeminiModelOptions{})
	}
	if key, err := keys.GetApiKey("openai"); err == nil && key != "" {
		return client.NewOpenAIClient(ctx, key, client.OpenAIModelOptions{})
	}
	if key, err := keys.GetApiKey("anthropic"); err == nil && key != "" {
		return client.NewClaudeClient(ctx, key, client.ClaudeModelOptions{})
	}
	return nil, fmt.Errorf("no provider API key configured")
}

// newVideoClient returns nil when no Gemini key is configured; the video
// service reports the missing backend at call time.
func newVideoClient(keys *services.KeyringService) services.VideoGenerator {
	key, err := keys.GetApiKey("gemini")
	if err != nil || key == "" {
		return nil
	}
	c, err := video.NewClient(context.Background(), key, video.DefaultVideoModel, video.PollConfig{})
	if err != nil {
		return nil
	}
	return c
}
