package reason

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"encoding/json"

	genai "google.golang.org/genai"

	"github.com/loomhq/loom/pkg/config"
)

// ErrEmptyResponse indicates the model returned no usable candidate.
var ErrEmptyResponse = errors.New("reasoning engine returned an empty response")

// GeminiClient implements Client over the official genai SDK.
type GeminiClient struct {
	cli        *genai.Client
	model      string
	titleModel string
	maxTokens  int
}

// NewGeminiClient creates a reasoning client. The API key is read from the
// environment variable named in the config; the genai client also falls back
// to its own standard variables.
func NewGeminiClient(ctx context.Context, cfg *config.ReasonerConfig) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClient{
		cli:        cli,
		model:      cfg.Model,
		titleModel: cfg.TitleModel,
		maxTokens:  cfg.MaxOutputTokens,
	}, nil
}

// Decide asks for one decision round as application/json.
func (g *GeminiClient) Decide(ctx context.Context, input TurnInput) (json.RawMessage, error) {
	prompt := BuildDecisionPrompt(input)

	genCfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	if g.maxTokens > 0 {
		genCfg.MaxOutputTokens = int32(g.maxTokens)
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		genCfg,
	)
	if err != nil {
		return nil, fmt.Errorf("decision generation failed: %w", err)
	}
	text, err := firstText(resp)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(text), nil
}

// GenerateTitle produces a short session title.
func (g *GeminiClient) GenerateTitle(ctx context.Context, firstMessage string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.titleModel,
		[]*genai.Content{{Parts: []*genai.Part{{Text: BuildTitlePrompt(firstMessage)}}}},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("title generation failed: %w", err)
	}
	text, err := firstText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(text), `"`)), nil
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
