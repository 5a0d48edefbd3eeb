package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/postwright/postwright-api/internal/config"
	"github.com/postwright/postwright-api/internal/generation"
	"github.com/postwright/postwright-api/internal/platform/gemini"
	"github.com/postwright/postwright-api/internal/service"
)

// application holds the assembled dependencies of the running server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	postService service.PostService
}

// newApplication wires the prompt builder, generation client and service
// layer from configuration. The API credential is injected here, once, from
// the loaded config; nothing downstream reads the process environment.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	builder, err := newPromptBuilder(cfg.LLM)
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	postService, err := service.NewPostService(builder, generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		postService: postService,
	}, nil
}

// newPromptBuilder selects between the built-in prompt template and a
// configured override file.
func newPromptBuilder(cfg config.LLMConfig) (*generation.PromptBuilder, error) {
	if cfg.PromptTemplatePath != "" {
		builder, err := generation.NewPromptBuilderFromFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load prompt template: %w", err)
		}
		return builder, nil
	}

	builder, err := generation.NewPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt builder: %w", err)
	}
	return builder, nil
}

// cleanup releases application resources before shutdown. The generation
// client holds no persistent connections, so there is nothing to close yet;
// the hook exists so shutdown ordering stays in one place.
func (app *application) cleanup() {
	app.logger.Info("Application cleanup completed")
}
