package sandbox

import (
	"fmt"
	"regexp"
	"strings"

	"knowledgechat/internal/models"
)

// SandboxFlags is the capability set the preview iframe is granted.
// allow-same-origin is intentionally absent: even if sanitization were
// imperfect, embedded content cannot reach the hosting page's storage,
// cookies or DOM.
const SandboxFlags = "allow-scripts allow-modals allow-forms allow-popups"

const contentSecurityPolicy = "default-src 'self' https://cdn.tailwindcss.com; " +
	"style-src 'unsafe-inline' https://fonts.googleapis.com https://cdn.tailwindcss.com; " +
	"font-src https://fonts.gstatic.com;"

const emptyRootMarkup = `<div id="root"></div>`

var (
	scriptElementPattern = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	eventHandlerPattern  = regexp.MustCompile(`(?i)\bon\w+\s*=\s*["'][^"']*["']`)
	jsProtocolPattern    = regexp.MustCompile(`(?i)javascript:`)
)

// Sanitize neutralizes script-injection vectors in generated markup: script
// elements become an inert comment marker, inline event handlers and
// javascript: URIs are rewritten to blocked placeholders. It is applied to
// HTML and CSS alike before anything is embedded in the preview document.
func Sanitize(content string) string {
	content = scriptElementPattern.ReplaceAllString(content, "<!-- Script Blocked for Security -->")
	content = eventHandlerPattern.ReplaceAllString(content, `blocked-event=""`)
	content = jsProtocolPattern.ReplaceAllString(content, "blocked-protocol:")
	return content
}

// Render assembles the sandboxed preview document for a project. The first
// .html file supplies the body; every .css file is concatenated as an inline
// style block. Pure with respect to (files, direction).
//
// When no .html file exists the renderer stays permissive and falls back to
// an empty root container, even though the validator flags the same project
// as invalid; both behaviors are kept independently on purpose.
func Render(files []models.ProjectFile, direction string) string {
	if direction != "rtl" {
		direction = "ltr"
	}

	body := emptyRootMarkup
	for _, f := range files {
		if strings.HasSuffix(f.Path, ".html") {
			body = f.Content
			break
		}
	}
	body = Sanitize(body)

	var styles strings.Builder
	for _, f := range files {
		if strings.HasSuffix(f.Path, ".css") {
			styles.WriteString("<style>")
			styles.WriteString(Sanitize(f.Content))
			styles.WriteString("</style>\n")
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html dir="%s">
  <head>
    <meta charset="UTF-8">
    <meta http-equiv="Content-Security-Policy" content="%s">
    <script src="https://cdn.tailwindcss.com"></script>
    <link href="https://fonts.googleapis.com/css2?family=Tajawal:wght@400;700&display=swap" rel="stylesheet">
    <style>
      body { font-family: 'Tajawal', sans-serif; margin: 0; padding: 20px; }
      * { transition: none !important; }
    </style>
    %s
  </head>
  <body class="bg-white text-slate-900">
    %s
  </body>
</html>`, direction, contentSecurityPolicy, styles.String(), body)
}
