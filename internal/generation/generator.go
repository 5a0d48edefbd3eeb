package generation

import (
	"context"
)

// Generator defines the interface for producing text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate sends the prompt to the underlying text-generation service
	// and returns the generated text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The natural-language instruction to send
	//
	// Returns:
	//   - The generated text
	//   - An error if generation fails for any reason (see errors.go for specific types)
	Generate(ctx context.Context, prompt string) (string, error)
}
