package models

type LogLevel string

const (
	LogInfo   LogLevel = "INFO"
	LogWarn   LogLevel = "WARN"
	LogError  LogLevel = "ERROR"
	LogSystem LogLevel = "SYSTEM"
)

// LogEntry is immutable once created. Timestamp is pre-formatted for the
// monitor feed rather than kept as time.Time.
type LogEntry struct {
	Timestamp string   `json:"timestamp"`
	Level     LogLevel `json:"level"`
	Message   string   `json:"message"`
}
