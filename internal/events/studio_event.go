package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	ChatChunk   = "events:chat:chunk"
	ChatDone    = "events:chat:done"
	MonitorLog  = "events:monitor:log"
	ToolSwitch  = "events:tool:switch"
	VideoStatus = "events:video:status"
)

// StudioEvent is a simple struct representing a backend event payload
type StudioEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	TurnKey   string            `json:"turnKey,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type contextKey string

const turnContextKey contextKey = "knowledgechat/events/turn"

// WithTurn returns a derived context annotated with the given turn key so
// event emitters can automatically scope payloads.
func WithTurn(ctx context.Context, turnKey string) context.Context {
	if strings.TrimSpace(turnKey) == "" {
		return ctx
	}
	return context.WithValue(ctx, turnContextKey, turnKey)
}

// TurnFromContext extracts the turn key associated with ctx.
func TurnFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(turnContextKey).(string); ok {
		return v
	}
	return ""
}

func CreateStudioEvent(eventType EventType, message string) StudioEvent {
	return StudioEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info StudioEvent.
func NewInfo(message string) StudioEvent {
	return CreateStudioEvent(EventInfo, message)
}

// NewWarn creates a warn StudioEvent.
func NewWarn(message string) StudioEvent {
	return CreateStudioEvent(EventWarn, message)
}

// NewError creates an error StudioEvent.
func NewError(message string) StudioEvent {
	return CreateStudioEvent(EventError, message)
}

// NewSuccess creates a success StudioEvent.
func NewSuccess(message string) StudioEvent {
	return CreateStudioEvent(EventSuccess, message)
}
