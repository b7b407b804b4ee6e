package project

import (
	"regexp"
	"strings"

	"knowledgechat/internal/models"
)

// fileBlockPattern matches the output grammar the studio model is instructed
// to follow: a /path line, a fenced code block with an optional language tag,
// and the block body up to the closing fence. Prose between blocks is ignored.
var fileBlockPattern = regexp.MustCompile("(?s)/([a-zA-Z0-9._\\-/]+)\\n```(?:\\w+)?\\n(.*?)```")

// Extract scans the final response text for file blocks and returns one
// ProjectFile per match, in order of appearance. The body is kept verbatim
// (no trimming or dedenting). No matches means the response is plain text;
// path safety is deliberately left to the validator.
func Extract(text string) []models.ProjectFile {
	matches := fileBlockPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	files := make([]models.ProjectFile, 0, len(matches))
	for _, m := range matches {
		files = append(files, models.ProjectFile{
			Path:     m[1],
			Content:  m[2],
			Language: languageForPath(m[1]),
		})
	}
	return files
}

// languageForPath derives the language hint from the path's extension,
// defaulting to "html" when there is none.
func languageForPath(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 || idx == len(path)-1 {
		return "html"
	}
	return path[idx+1:]
}
