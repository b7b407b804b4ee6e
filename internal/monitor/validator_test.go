package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"knowledgechat/internal/models"
)

func TestValidate_EmptyProjectIsValid(t *testing.T) {
	result := Validate(nil)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_MissingEntryPoint(t *testing.T) {
	result := Validate([]models.ProjectFile{
		{Path: "style.css", Content: "body {}"},
	})
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Missing entry point: index.html is required for rendering.")
}

func TestValidate_EntryPointMatchIsCaseInsensitive(t *testing.T) {
	result := Validate([]models.ProjectFile{
		{Path: "Index.HTML", Content: "<div></div>"},
	})
	assert.True(t, result.IsValid)
}

func TestValidate_EvalIsAnErrorInAnyFile(t *testing.T) {
	result := Validate([]models.ProjectFile{
		{Path: "index.html", Content: "<script>eval('1+1')</script>"},
		{Path: "app.js", Content: "eval(payload)"},
	})
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Security Risk: 'eval()' detected in index.html")
	assert.Contains(t, result.Errors, "Security Risk: 'eval()' detected in app.js")
}

func TestValidate_ScriptTagOutsideHTMLIsWarningOnly(t *testing.T) {
	result := Validate([]models.ProjectFile{
		{Path: "index.html", Content: "<h1>ok</h1>"},
		{Path: "app.js", Content: "const s = \"<script>\";"},
	})
	assert.True(t, result.IsValid)
	assert.Contains(t, result.Warnings, "Suspicious script tag found in non-HTML file: app.js")
}

func TestValidate_ScriptTagInsideHTMLNotWarned(t *testing.T) {
	result := Validate([]models.ProjectFile{
		{Path: "index.html", Content: "<script>init()</script>"},
	})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Warnings)
}
