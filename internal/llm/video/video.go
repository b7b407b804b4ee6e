package video

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultVideoModel = "veo-3.1-fast-generate-preview"

// GenerateConfig is the rendering configuration forwarded to the provider.
type GenerateConfig struct {
	Resolution     string
	AspectRatio    string
	NumberOfVideos int32
}

func defaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Resolution:     "1080p",
		AspectRatio:    "16:9",
		NumberOfVideos: 1,
	}
}

// Client issues asynchronous video-generation jobs and polls the returned
// operation handle until completion.
type Client struct {
	genaiClient *genai.Client
	model       string
	poll        PollConfig
}

func NewClient(ctx context.Context, apiKey, model string, poll PollConfig) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultVideoModel
	}
	return &Client{genaiClient: genaiClient, model: model, poll: poll}, nil
}

// GenerateVideo starts a video job for prompt and blocks until the operation
// completes, returning the downloadable media URI. The poll loop honors ctx
// cancellation, so navigating away or an explicit stop aborts the wait.
func (c *Client) GenerateVideo(ctx context.Context, prompt string, cfg GenerateConfig) (string, error) {
	if cfg == (GenerateConfig{}) {
		cfg = defaultGenerateConfig()
	}

	op, err := c.genaiClient.Models.GenerateVideos(ctx, c.model, prompt, nil, &genai.GenerateVideosConfig{
		Resolution:     cfg.Resolution,
		AspectRatio:    cfg.AspectRatio,
		NumberOfVideos: cfg.NumberOfVideos,
	})
	if err != nil {
		return "", fmt.Errorf("start video generation: %w", err)
	}

	op, err = PollUntilDone(ctx, c.poll, func(pollCtx context.Context) (*genai.GenerateVideosOperation, bool, error) {
		refreshed, pollErr := c.genaiClient.Operations.GetVideosOperation(pollCtx, op, nil)
		if pollErr != nil {
			return nil, false, fmt.Errorf("poll video operation: %w", pollErr)
		}
		op = refreshed
		return refreshed, refreshed.Done, nil
	})
	if err != nil {
		return "", err
	}

	return videoURI(op)
}

func videoURI(op *genai.GenerateVideosOperation) (string, error) {
	if op == nil || op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return "", errors.New("video operation completed without a result")
	}
	generated := op.Response.GeneratedVideos[0]
	if generated == nil || generated.Video == nil || generated.Video.URI == "" {
		return "", errors.New("video operation completed without a media URI")
	}
	return generated.Video.URI, nil
}
