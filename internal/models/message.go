package models

type MessageRole string

const (
	RoleUser MessageRole = "user"
	RoleAI   MessageRole = "ai"
)

type ContentType string

const (
	ContentText    ContentType = "text"
	ContentCode    ContentType = "code"
	ContentVideo   ContentType = "video"
	ContentProject ContentType = "project"
)

// MessageMetadata carries the optional payload attached to an AI turn once it
// has been finalized (extracted project files, a generated video URL, ...).
type MessageMetadata struct {
	VideoURL string        `json:"videoUrl,omitempty"`
	Files    []ProjectFile `json:"files,omitempty"`
	Language string        `json:"language,omitempty"`
	FilePath string        `json:"filePath,omitempty"`
}

// ChatMessage is one entry of the conversation transcript. The slice of
// messages is session state only and is never persisted.
type ChatMessage struct {
	ID          string           `json:"id"`
	Role        MessageRole      `json:"role"`
	Content     string           `json:"content"`
	Type        ContentType      `json:"type"`
	Metadata    *MessageMetadata `json:"metadata,omitempty"`
	IsStreaming bool             `json:"isStreaming,omitempty"`
}
