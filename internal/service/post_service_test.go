package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/postwright/postwright-api/internal/domain"
	"github.com/postwright/postwright-api/internal/generation"
	"github.com/postwright/postwright-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records calls and returns canned results.
type fakeGenerator struct {
	calls  int
	prompt string
	result string
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, gen generation.Generator) service.PostService {
	t.Helper()

	builder, err := generation.NewPromptBuilder()
	require.NoError(t, err)

	svc, err := service.NewPostService(builder, gen, testLogger())
	require.NoError(t, err)
	return svc
}

func validRequest() domain.PostRequest {
	return domain.PostRequest{
		BusinessType:   "fitness coach",
		TargetAudience: "busy professionals",
		PostGoal:       domain.PostGoalIncreaseEngagement,
		PostTone:       domain.PostToneUpbeat,
		Include:        "a short video",
		Avoid:          "long paragraphs",
	}
}

func TestNewPostServiceValidation(t *testing.T) {
	t.Parallel()

	builder, err := generation.NewPromptBuilder()
	require.NoError(t, err)
	gen := &fakeGenerator{}

	tests := []struct {
		name      string
		builder   *generation.PromptBuilder
		generator generation.Generator
		logger    *slog.Logger
	}{
		{"nil builder", nil, gen, testLogger()},
		{"nil generator", builder, nil, testLogger()},
		{"nil logger", builder, gen, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := service.NewPostService(tt.builder, tt.generator, tt.logger)
			assert.Error(t, err)
		})
	}
}

func TestGeneratePostSuccess(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{result: "your engaging post"}
	svc := newService(t, gen)

	text, err := svc.GeneratePost(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "your engaging post", text)
	assert.Equal(t, 1, gen.calls)

	// The generator received the built prompt, with the request fields in it.
	assert.True(t, strings.Contains(gen.prompt, "fitness coach"))
	assert.True(t, strings.Contains(gen.prompt, "busy professionals"))
}

// TestGeneratePostInvalidRequest verifies the invariant that no generation
// call is issued for a request missing its required fields.
func TestGeneratePostInvalidRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*domain.PostRequest)
	}{
		{"empty business type", func(r *domain.PostRequest) { r.BusinessType = "" }},
		{"empty target audience", func(r *domain.PostRequest) { r.TargetAudience = "" }},
		{"invalid goal", func(r *domain.PostRequest) { r.PostGoal = "nonsense" }},
		{"invalid tone", func(r *domain.PostRequest) { r.PostTone = "nonsense" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := &fakeGenerator{result: "should never be produced"}
			svc := newService(t, gen)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.GeneratePost(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, gen.calls, "no generation attempt for an invalid request")
		})
	}
}

func TestGeneratePostGeneratorFailure(t *testing.T) {
	t.Parallel()

	genErr := errors.New("generation endpoint unavailable")
	gen := &fakeGenerator{err: genErr}
	svc := newService(t, gen)

	_, err := svc.GeneratePost(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, genErr)
	assert.Equal(t, 1, gen.calls)
}
