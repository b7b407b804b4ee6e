package monitor

import (
	"fmt"

	"knowledgechat/internal/models"
)

// Watcher inspects each deployed project version and reports findings to the
// monitor feed. Validation findings are advisory only and never block the
// preview from rendering.
type Watcher struct {
	logger *Logger
}

func NewWatcher(logger *Logger) *Watcher {
	return &Watcher{logger: logger}
}

// Watch validates a freshly deployed project and logs the outcome.
func (w *Watcher) Watch(project []models.ProjectFile) models.ValidationResult {
	if len(project) == 0 {
		return models.ValidationResult{IsValid: true, Errors: []string{}, Warnings: []string{}}
	}

	w.logger.Log(models.LogSystem, fmt.Sprintf("Analyzing new project version (%d files)", len(project)))

	result := Validate(project)

	if result.IsValid && len(result.Warnings) == 0 {
		w.logger.Log(models.LogInfo, "Project validation passed. Integrity confirmed.")
	}

	for _, warning := range result.Warnings {
		w.logger.Log(models.LogWarn, warning)
	}

	for _, e := range result.Errors {
		w.logger.Log(models.LogError, e)
		if fix, ok := SuggestFix(e); ok {
			w.logger.Log(models.LogSystem, fmt.Sprintf("Auto-Repair Suggestion: %s", fix))
		}
	}

	return result
}
