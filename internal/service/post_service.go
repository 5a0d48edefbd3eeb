// Package service composes the domain, prompt building and generation layers
// into the operations exposed to the API.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/postwright/postwright-api/internal/domain"
	"github.com/postwright/postwright-api/internal/generation"
)

// PostService defines the operations for generating social media posts.
type PostService interface {
	// GeneratePost validates the request, builds the prompt and runs the
	// generator. Validation failures are returned before any generation
	// attempt is made.
	GeneratePost(ctx context.Context, req domain.PostRequest) (string, error)
}

// postService is the default PostService implementation.
type postService struct {
	builder   *generation.PromptBuilder
	generator generation.Generator
	logger    *slog.Logger
}

// NewPostService creates a PostService with the given dependencies.
func NewPostService(
	builder *generation.PromptBuilder,
	generator generation.Generator,
	logger *slog.Logger,
) (PostService, error) {
	if builder == nil {
		return nil, errors.New("prompt builder cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &postService{
		builder:   builder,
		generator: generator,
		logger:    logger,
	}, nil
}

// GeneratePost implements PostService.
func (s *postService) GeneratePost(ctx context.Context, req domain.PostRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	prompt, err := s.builder.Build(req)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	s.logger.DebugContext(ctx, "Prompt built",
		"prompt_length", len(prompt),
		"post_goal", string(req.PostGoal),
		"post_tone", string(req.PostTone))

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.ErrorContext(ctx, "Post generation failed", "error", err)
		return "", err
	}

	return text, nil
}
