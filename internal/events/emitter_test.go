package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCustomEmitter_FillsTurnKeyFromContext(t *testing.T) {
	var captured StudioEvent
	SetCustomEmitter(func(ctx context.Context, name string, evt StudioEvent) {
		captured = evt
	})
	defer SetCustomEmitter(nil)

	ctx := WithTurn(context.Background(), "turn-42")
	Emit(ctx, ChatChunk, NewInfo("hello"))

	assert.Equal(t, "turn-42", captured.TurnKey)
	assert.Equal(t, EventInfo, captured.Type)
	assert.Equal(t, "hello", captured.Message)
	assert.NotEmpty(t, captured.ID)
}

func TestSetCustomEmitter_ExplicitTurnKeyWins(t *testing.T) {
	var captured StudioEvent
	SetCustomEmitter(func(ctx context.Context, name string, evt StudioEvent) {
		captured = evt
	})
	defer SetCustomEmitter(nil)

	evt := NewWarn("careful")
	evt.TurnKey = "explicit"
	Emit(WithTurn(context.Background(), "from-context"), MonitorLog, evt)

	assert.Equal(t, "explicit", captured.TurnKey)
}

func TestWithTurn_EmptyKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithTurn(ctx, "  "))
	assert.Empty(t, TurnFromContext(ctx))
}

func TestTurnFromContext_NilContext(t *testing.T) {
	assert.Empty(t, TurnFromContext(nil))
}

func TestDefaultEmitterIsInert(t *testing.T) {
	SetCustomEmitter(nil)
	// Must not panic without a webview runtime attached.
	Emit(context.Background(), ChatDone, NewSuccess("done"))
}
