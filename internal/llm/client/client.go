package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// Fixed sampling parameters for studio generation.
const (
	DefaultTemperature float32 = 0.8
	DefaultTopP        float32 = 0.95
)

// Default model names per provider.
const (
	DefaultGeminiModel = "gemini-3-pro-preview"
	DefaultOpenAIModel = "gpt-5-mini"
	DefaultClaudeModel = "claude-sonnet-4-20250514"

	claudeMaxTokens = 8192
)

// ProviderError wraps any failure of the external generative service
// (network, auth, quota). It is terminal for the turn: callers must not
// attempt partial project extraction.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// LLMClient streams studio responses from one configured chat model.
type LLMClient struct {
	chatModel model.BaseChatModel
	provider  string
}

type GeminiModelOptions struct {
	Model string
}

type OpenAIModelOptions struct {
	Model string
}

type ClaudeModelOptions struct {
	Model string
}

// NewGeminiClient builds the default studio client.
func NewGeminiClient(ctx context.Context, apiKey string, opts GeminiModelOptions) (*LLMClient, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return nil, err
	}

	modelName := opts.Model
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      genaiClient,
		Model:       modelName,
		Temperature: floatPtr(DefaultTemperature),
		TopP:        floatPtr(DefaultTopP),
	})
	if err != nil {
		log.Printf("Error creating Gemini chat model: %v", err)
		return nil, err
	}

	return &LLMClient{chatModel: chatModel, provider: "gemini"}, nil
}

func NewOpenAIClient(ctx context.Context, apiKey string, opts OpenAIModelOptions) (*LLMClient, error) {
	modelName := opts.Model
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		Model:       modelName,
		Temperature: floatPtr(DefaultTemperature),
		TopP:        floatPtr(DefaultTopP),
	})
	if err != nil {
		log.Printf("Error creating OpenAI chat model: %v", err)
		return nil, err
	}

	return &LLMClient{chatModel: chatModel, provider: "openai"}, nil
}

func NewClaudeClient(ctx context.Context, apiKey string, opts ClaudeModelOptions) (*LLMClient, error) {
	modelName := opts.Model
	if modelName == "" {
		modelName = DefaultClaudeModel
	}

	chatModel, err := claude.NewChatModel(ctx, &claude.Config{
		APIKey:      apiKey,
		Model:       modelName,
		MaxTokens:   claudeMaxTokens,
		Temperature: floatPtr(DefaultTemperature),
		TopP:        floatPtr(DefaultTopP),
	})
	if err != nil {
		log.Printf("Error creating Claude chat model: %v", err)
		return nil, err
	}

	return &LLMClient{chatModel: chatModel, provider: "anthropic"}, nil
}

func (c *LLMClient) Provider() string {
	if c == nil {
		return ""
	}
	return c.provider
}

// GenerateStudioResponse streams a response for prompt under the fixed studio
// system instruction. Each onChunk invocation delivers the FULL cumulative
// text so far, not a delta: the provider contract is cumulative replacement,
// and callers must treat every callback as a wholesale replacement. The final
// cumulative text is returned once the stream ends.
func (c *LLMClient) GenerateStudioResponse(ctx context.Context, prompt string, onChunk func(cumulative string)) (string, error) {
	if c == nil || c.chatModel == nil {
		return "", &ProviderError{Provider: "unconfigured", Err: errors.New("chat model not initialized")}
	}

	messages := []*schema.Message{
		schema.SystemMessage(StudioSystemPrompt()),
		schema.UserMessage(prompt),
	}

	reader, err := c.chatModel.Stream(ctx, messages)
	if err != nil {
		return "", &ProviderError{Provider: c.provider, Err: err}
	}
	if reader == nil {
		return "", &ProviderError{Provider: c.provider, Err: errors.New("model returned nil stream reader")}
	}
	defer reader.Close()

	full, err := accumulateStream(reader, onChunk)
	if err != nil {
		return "", &ProviderError{Provider: c.provider, Err: err}
	}
	return full, nil
}

// accumulateStream drains a message stream, concatenating assistant deltas
// into the running cumulative text and reporting it after every delta.
func accumulateStream(reader *schema.StreamReader[*schema.Message], onChunk func(string)) (string, error) {
	var full strings.Builder

	for {
		msg, recvErr := reader.Recv()
		if recvErr != nil {
			if errors.Is(recvErr, io.EOF) {
				break
			}
			return "", fmt.Errorf("stream recv: %w", recvErr)
		}
		if msg == nil || len(msg.Content) == 0 {
			continue
		}
		full.WriteString(msg.Content)
		if onChunk != nil {
			onChunk(full.String())
		}
	}

	return full.String(), nil
}

// StudioSystemPrompt returns the fixed persona and output-grammar instruction
// sent with every generation.
func StudioSystemPrompt() string {
	data, err := embeddedPrompts.ReadFile("prompts/studio_system_prompt.txt")
	if err != nil {
		// The embed directive guarantees the file exists in built binaries.
		return "You are the Lead AI of \"Knowledge Chat\"."
	}
	return string(data)
}

func floatPtr(v float32) *float32 {
	return &v
}
