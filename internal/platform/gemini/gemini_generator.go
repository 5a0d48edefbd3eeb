package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/postwright/postwright-api/internal/config"
	"github.com/postwright/postwright-api/internal/generation"
	"google.golang.org/genai"
)

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to produce post text from a prompt.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string

	// retry governs repeated attempts against the endpoint
	retry retryPolicy

	// call performs one attempt against the endpoint. It defaults to the real
	// API call and is replaceable in tests.
	call modelCall
}

// modelCall is a single attempt against the endpoint for a given prompt.
type modelCall func(ctx context.Context, prompt string) (string, error)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// The API key is injected through config rather than read from the process
// environment here, so a missing credential surfaces as a constructor error
// instead of a failure deep inside a call.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	g := &GeminiGenerator{
		logger: logger,
		config: cfg,
		client: client,
		model:  cfg.ModelName,
		retry: newRetryPolicy(ctx, logger,
			cfg.MaxRetries, cfg.RetryDelaySeconds, cfg.MaxRetryDelaySeconds),
	}
	g.call = g.callModel

	return g, nil
}

// Generate sends the prompt to the Gemini API and returns the generated text,
// retrying transient failures per the configured policy.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	opID := uuid.NewString()
	log := g.logger.With("op_id", opID, "model", g.model)

	log.InfoContext(ctx, "Starting post generation",
		"prompt_length", len(prompt))

	text, err := g.retry.do(ctx, log, func(ctx context.Context) (string, error) {
		return g.call(ctx, prompt)
	})
	if err != nil {
		return "", err
	}

	log.InfoContext(ctx, "Post generation completed",
		"response_length", len(text))

	return text, nil
}

// contentConfig maps the configured sampling parameters and safety thresholds
// to the request shape expected by the Gemini API. Zero-valued knobs are
// omitted so the endpoint applies its own defaults.
func (g *GeminiGenerator) contentConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: g.config.MaxOutputTokens,
		SafetySettings:  defaultSafetySettings(),
	}

	if g.config.Temperature > 0 {
		cfg.Temperature = genai.Ptr(g.config.Temperature)
	}
	if g.config.TopP > 0 {
		cfg.TopP = genai.Ptr(g.config.TopP)
	}
	if g.config.TopK > 0 {
		cfg.TopK = genai.Ptr(g.config.TopK)
	}

	return cfg
}

// defaultSafetySettings blocks medium-and-above content in all four harm
// categories, matching the thresholds the service has always requested.
func defaultSafetySettings() []*genai.SafetySetting {
	return []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	}
}

// callModel performs a single GenerateContent request and classifies the
// outcome. Transport errors are returned as-is (and therefore retried);
// blocked or malformed responses map to permanent generation errors.
func (g *GeminiGenerator) callModel(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.contentConfig())
	if err != nil {
		return "", err
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
			return "", fmt.Errorf("%w: prompt blocked (%s)",
				generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	if text == "" {
		return "", fmt.Errorf("%w: no text in response", generation.ErrInvalidResponse)
	}

	return text, nil
}
