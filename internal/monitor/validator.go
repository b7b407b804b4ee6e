package monitor

import (
	"fmt"
	"strings"

	"knowledgechat/internal/models"
)

// Validate runs the structural and security checks over an extracted project.
// An empty project is trivially valid. Warnings never affect validity.
func Validate(project []models.ProjectFile) models.ValidationResult {
	errors := []string{}
	warnings := []string{}

	if len(project) == 0 {
		return models.ValidationResult{IsValid: true, Errors: errors, Warnings: warnings}
	}

	hasEntry := false
	for _, f := range project {
		if strings.HasSuffix(strings.ToLower(f.Path), "index.html") {
			hasEntry = true
			break
		}
	}
	if !hasEntry {
		errors = append(errors, "Missing entry point: index.html is required for rendering.")
	}

	for _, f := range project {
		if strings.Contains(f.Content, "<script") && !strings.HasSuffix(f.Path, ".html") {
			warnings = append(warnings, fmt.Sprintf("Suspicious script tag found in non-HTML file: %s", f.Path))
		}
		if strings.Contains(f.Content, "eval(") {
			errors = append(errors, fmt.Sprintf("Security Risk: 'eval()' detected in %s", f.Path))
		}
	}

	return models.ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
