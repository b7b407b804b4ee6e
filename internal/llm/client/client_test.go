package client

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
)

func TestAccumulateStream_CumulativeChunks(t *testing.T) {
	reader, writer := schema.Pipe[*schema.Message](4)
	go func() {
		writer.Send(schema.AssistantMessage("Hel", nil), nil)
		writer.Send(schema.AssistantMessage("lo ", nil), nil)
		writer.Send(schema.AssistantMessage("world", nil), nil)
		writer.Close()
	}()

	var chunks []string
	full, err := accumulateStream(reader, func(cumulative string) {
		chunks = append(chunks, cumulative)
	})

	assert.NoError(t, err)
	assert.Equal(t, "Hello world", full)
	// Every callback carries the full text so far, never a delta.
	assert.Equal(t, []string{"Hel", "Hello ", "Hello world"}, chunks)
}

func TestAccumulateStream_SkipsEmptyDeltas(t *testing.T) {
	reader, writer := schema.Pipe[*schema.Message](4)
	go func() {
		writer.Send(schema.AssistantMessage("", nil), nil)
		writer.Send(schema.AssistantMessage("payload", nil), nil)
		writer.Close()
	}()

	calls := 0
	full, err := accumulateStream(reader, func(string) { calls++ })

	assert.NoError(t, err)
	assert.Equal(t, "payload", full)
	assert.Equal(t, 1, calls)
}

func TestAccumulateStream_PropagatesStreamError(t *testing.T) {
	boom := errors.New("connection reset")
	reader, writer := schema.Pipe[*schema.Message](2)
	go func() {
		writer.Send(schema.AssistantMessage("partial", nil), nil)
		writer.Send(nil, boom)
		writer.Close()
	}()

	_, err := accumulateStream(reader, nil)
	assert.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAccumulateStream_NilCallback(t *testing.T) {
	reader, writer := schema.Pipe[*schema.Message](2)
	go func() {
		writer.Send(schema.AssistantMessage("ok", nil), nil)
		writer.Close()
	}()

	full, err := accumulateStream(reader, nil)
	assert.NoError(t, err)
	assert.Equal(t, "ok", full)
}

func TestStudioSystemPrompt(t *testing.T) {
	prompt := StudioSystemPrompt()
	assert.Contains(t, prompt, "Knowledge Chat")
	assert.Contains(t, prompt, "OUTPUT STRUCTURE")
}

func TestProviderError_Unwrap(t *testing.T) {
	inner := errors.New("quota exceeded")
	err := &ProviderError{Provider: "gemini", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "gemini")
}

func TestGenerateStudioResponse_Unconfigured(t *testing.T) {
	var c *LLMClient
	_, err := c.GenerateStudioResponse(context.Background(), "hi", nil)
	assert.Error(t, err)
}
