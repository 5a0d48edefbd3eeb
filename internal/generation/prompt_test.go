package generation_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/postwright/postwright-api/internal/domain"
	"github.com/postwright/postwright-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T) *generation.PromptBuilder {
	t.Helper()
	builder, err := generation.NewPromptBuilder()
	require.NoError(t, err)
	return builder
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	builder := newBuilder(t)
	req := domain.PostRequest{
		BusinessType:   "fashion retailer",
		TargetAudience: "young adults",
		PostGoal:       domain.PostGoalPromoteProduct,
		PostTone:       domain.PostToneCasual,
		Include:        "Image",
		Avoid:          "technical jargon",
	}

	first, err := builder.Build(req)
	require.NoError(t, err)

	// Identical input must yield byte-identical output.
	for i := 0; i < 5; i++ {
		again, err := builder.Build(req)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuildContainsAllFieldsVerbatim(t *testing.T) {
	t.Parallel()

	builder := newBuilder(t)
	req := domain.PostRequest{
		BusinessType:   "fitness coach",
		TargetAudience: "busy professionals",
		PostGoal:       domain.PostGoalIncreaseEngagement,
		PostTone:       domain.PostToneUpbeat,
		Include:        "a short video",
		Avoid:          "long paragraphs",
	}

	prompt, err := builder.Build(req)
	require.NoError(t, err)

	// Every field must appear literally, unescaped and untruncated.
	for _, want := range []string{
		"fitness coach",
		"busy professionals",
		"Increase engagement",
		"Upbeat",
		"a short video",
		"long paragraphs",
	} {
		assert.Contains(t, prompt, want)
	}

	// The four fixed structural sections must always be present.
	for _, header := range []string{
		"Attention-Grabbing Opening",
		"Engaging Content",
		"Call-to-Action (CTA)",
		"Hashtags",
	} {
		assert.Contains(t, prompt, header)
	}

	// The length instruction is part of the fixed template.
	assert.Contains(t, prompt, "at least 1000-2000 words")
}

func TestBuildDoesNotEscapeInput(t *testing.T) {
	t.Parallel()

	builder := newBuilder(t)
	req := domain.PostRequest{
		BusinessType:   `café & bar "Zum Löwen" <est. 1999>`,
		TargetAudience: "locals & tourists",
		PostGoal:       domain.PostGoalOther,
		PostTone:       domain.PostToneHumorous,
	}

	prompt, err := builder.Build(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, `café & bar "Zum Löwen" <est. 1999>`)
	assert.NotContains(t, prompt, "&amp;")
	assert.NotContains(t, prompt, "&lt;")
}

func TestNewPromptBuilderFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.tmpl")
	content := "Write a post for {{.BusinessType}} aimed at {{.TargetAudience}}."
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	builder, err := generation.NewPromptBuilderFromFile(path)
	require.NoError(t, err)

	prompt, err := builder.Build(domain.PostRequest{
		BusinessType:   "bakery",
		TargetAudience: "commuters",
	})
	require.NoError(t, err)
	assert.Equal(t, "Write a post for bakery aimed at commuters.", prompt)
}

func TestNewPromptBuilderFromFileErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := generation.NewPromptBuilderFromFile("")
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := generation.NewPromptBuilderFromFile(filepath.Join(t.TempDir(), "absent.tmpl"))
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})

	t.Run("malformed template", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("{{.Unclosed"), 0o600))

		_, err := generation.NewPromptBuilderFromFile(path)
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
	})
}

func TestBuildEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	builder := newBuilder(t)
	prompt, err := builder.Build(domain.PostRequest{
		BusinessType:   "bookstore",
		TargetAudience: "readers",
		PostGoal:       domain.PostGoalShareContent,
		PostTone:       domain.PostToneInformative,
	})
	require.NoError(t, err)

	// Empty optional fields leave their labels in place; the builder does
	// not validate, per its contract.
	assert.True(t, strings.Contains(prompt, "**Include:**"))
	assert.True(t, strings.Contains(prompt, "**Avoid:**"))
}
