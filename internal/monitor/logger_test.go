package monitor

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"knowledgechat/internal/models"
)

func TestLogger_HistoryPreservesOrder(t *testing.T) {
	l := NewLogger()
	l.Log(models.LogInfo, "first")
	l.Log(models.LogWarn, "second")
	l.Log(models.LogError, "third")

	history := l.History()
	assert.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Message)
	assert.Equal(t, "third", history[2].Message)
	assert.Equal(t, models.LogWarn, history[1].Level)
}

func TestLogger_TimestampFormat(t *testing.T) {
	l := NewLogger()
	l.clock = func() time.Time {
		return time.Date(2024, 6, 1, 9, 5, 3, 0, time.UTC)
	}
	l.Log(models.LogInfo, "stamped")
	assert.Equal(t, "09:05:03", l.History()[0].Timestamp)
}

func TestLogger_SubscribersNotifiedInRegistrationOrder(t *testing.T) {
	l := NewLogger()
	var order []string
	l.Subscribe(func(e models.LogEntry) { order = append(order, "a") })
	l.Subscribe(func(e models.LogEntry) { order = append(order, "b") })

	l.Log(models.LogInfo, "hello")
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestLogger_UnsubscribeIsIdempotent(t *testing.T) {
	l := NewLogger()
	count := 0
	unsubscribe := l.Subscribe(func(e models.LogEntry) { count++ })

	l.Log(models.LogInfo, "one")
	unsubscribe()
	unsubscribe()
	l.Log(models.LogInfo, "two")

	assert.Equal(t, 1, count)
}

func TestLogger_SubscriberMayLogWithoutDeadlock(t *testing.T) {
	l := NewLogger()
	logged := false
	l.Subscribe(func(e models.LogEntry) {
		if !logged {
			logged = true
			l.Log(models.LogSystem, "reentrant")
		}
	})

	l.Log(models.LogInfo, "outer")
	assert.Len(t, l.History(), 2)
}

func TestLogger_TailWindows(t *testing.T) {
	l := NewLogger()
	for i := 0; i < 15; i++ {
		l.Log(models.LogInfo, fmt.Sprintf("entry %d", i))
	}

	tail := l.Tail(DisplayWindow)
	assert.Len(t, tail, DisplayWindow)
	assert.Equal(t, "entry 5", tail[0].Message)
	assert.Equal(t, "entry 14", tail[len(tail)-1].Message)

	assert.Len(t, l.Tail(100), 15)
	assert.Nil(t, l.Tail(0))
}
