package models

// ProjectFile is one virtual file extracted from an AI response. A project is
// the ordered set of files from a single turn; a new project wholesale
// replaces the previous one.
type ProjectFile struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// ValidationResult is recomputed in full every time the current project
// changes. Warnings never affect validity.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
