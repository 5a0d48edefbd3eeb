package generation

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/postwright/postwright-api/internal/domain"
)

// defaultPromptTemplate is the built-in instruction template for post
// generation. Alternate wordings can be supplied from a file via
// configuration; this is the canonical variant.
//
// Note: text/template is used deliberately so that user-supplied fields are
// interpolated verbatim, with no escaping.
const defaultPromptTemplate = `My business type is {{.BusinessType}}.

Please help me write a highly detailed Facebook post, at least 1000-2000 words, that will engage my target audience, {{.TargetAudience}}.

Here are some additional details to consider:

* **Post Goal:** {{.PostGoal}}
* **Post Tone:** {{.PostTone}}
* **Include:** {{.Include}}
* **Avoid:** {{.Avoid}}

**Example Post Structure:**

1. **Attention-Grabbing Opening:** Start with a question or a bold statement to capture attention.
2. **Engaging Content:** Describe the main message or offer, highlighting key benefits or features.
3. **Call-to-Action (CTA):** Encourage & provide compelling reasons for the audience to take a specific action (e.g., visit a link, comment, share).
4. **Hashtags:** Include relevant hashtags to increase post visibility.
`

// PromptBuilder turns a PostRequest into the natural-language instruction
// sent to the generation endpoint. Building a prompt is deterministic and
// has no side effects; identical requests yield byte-identical prompts.
type PromptBuilder struct {
	// tmpl is the parsed template for creating prompts
	tmpl *template.Template
}

// NewPromptBuilder creates a PromptBuilder using the built-in template.
func NewPromptBuilder() (*PromptBuilder, error) {
	tmpl, err := template.New("post").Parse(defaultPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse built-in prompt template: %v",
			ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// NewPromptBuilderFromFile creates a PromptBuilder from a template file.
// The file must reference the same fields as the built-in template
// ({{.BusinessType}}, {{.TargetAudience}}, and so on).
func NewPromptBuilderFromFile(path string) (*PromptBuilder, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: prompt template path cannot be empty", ErrInvalidConfig)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, path, err)
	}

	tmpl, err := template.New("post").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build executes the template with the given request and returns the prompt.
// It performs no validation of the request; callers are expected to have
// validated it already.
func (b *PromptBuilder) Build(req domain.PostRequest) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
