package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"knowledgechat/internal/models"
)

func feedMessages(l *Logger) []string {
	var out []string
	for _, e := range l.History() {
		out = append(out, e.Message)
	}
	return out
}

func TestWatcher_HealthyProject(t *testing.T) {
	logger := NewLogger()
	w := NewWatcher(logger)

	result := w.Watch([]models.ProjectFile{
		{Path: "index.html", Content: "<h1>ok</h1>"},
	})

	assert.True(t, result.IsValid)
	messages := feedMessages(logger)
	assert.Contains(t, messages, "Analyzing new project version (1 files)")
	assert.Contains(t, messages, "Project validation passed. Integrity confirmed.")
}

func TestWatcher_BrokenProjectLogsErrorAndSuggestion(t *testing.T) {
	logger := NewLogger()
	w := NewWatcher(logger)

	result := w.Watch([]models.ProjectFile{
		{Path: "style.css", Content: "body {}"},
	})

	assert.False(t, result.IsValid)
	messages := feedMessages(logger)
	assert.Contains(t, messages, "Missing entry point: index.html is required for rendering.")
	assert.Contains(t, messages, "Auto-Repair Suggestion: Generate a basic index.html with a root div.")
}

func TestWatcher_WarningsDoNotFailValidation(t *testing.T) {
	logger := NewLogger()
	w := NewWatcher(logger)

	result := w.Watch([]models.ProjectFile{
		{Path: "index.html", Content: "<h1>ok</h1>"},
		{Path: "app.js", Content: "el.innerHTML = '<script>';"},
	})

	assert.True(t, result.IsValid)
	assert.Contains(t, feedMessages(logger), "Suspicious script tag found in non-HTML file: app.js")
}

func TestWatcher_EmptyProjectIsSilent(t *testing.T) {
	logger := NewLogger()
	w := NewWatcher(logger)

	result := w.Watch(nil)
	assert.True(t, result.IsValid)
	assert.Empty(t, logger.History())
}
