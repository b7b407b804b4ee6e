package monitor

import (
	"sync"
	"time"

	"knowledgechat/internal/models"
)

// DisplayWindow is the number of entries the sidebar feed shows. The logger
// itself keeps full history; windowing is the consumer's job via Tail.
const DisplayWindow = 10

type subscriber struct {
	id int
	fn func(models.LogEntry)
}

// Logger is the studio monitor feed. It is constructed once at startup and
// never torn down during a session; tests build isolated instances.
type Logger struct {
	mu      sync.Mutex
	entries []models.LogEntry
	subs    []subscriber
	nextID  int
	clock   func() time.Time
}

func NewLogger() *Logger {
	return &Logger{clock: time.Now}
}

// Log appends a timestamped entry and notifies subscribers synchronously, in
// registration order. Subscriber callbacks run outside the logger's lock so a
// callback may itself call Log, but callers must not do so unboundedly.
func (l *Logger) Log(level models.LogLevel, message string) {
	l.mu.Lock()
	entry := models.LogEntry{
		Timestamp: l.clock().Format("15:04:05"),
		Level:     level,
		Message:   message,
	}
	l.entries = append(l.entries, entry)
	subs := make([]subscriber, len(l.subs))
	copy(subs, l.subs)
	l.mu.Unlock()

	for _, s := range subs {
		s.fn(entry)
	}
}

// Subscribe registers a listener and returns its unsubscribe capability.
// Calling the returned function after the listener is already removed is a
// no-op.
func (l *Logger) Subscribe(fn func(models.LogEntry)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscriber{id: id, fn: fn})

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

// History returns a copy of every entry logged so far.
func (l *Logger) History() []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Tail returns the most recent n entries, oldest first.
func (l *Logger) Tail(n int) []models.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.LogEntry, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}
