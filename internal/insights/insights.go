// Package insights produces a narrative production summary with Gemini. It
// is a consumer of the core's record set; failures are returned to the
// caller, never fatal to the process.
package insights

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ShafahmadxX69/BEISS/internal/model"
)

// Generator calls the model configured for narrative summaries.
type Generator struct {
	model string
}

// NewGenerator creates a generator for the given model name.
func NewGenerator(model string) *Generator {
	return &Generator{model: model}
}

// ProductionSummary sends a digest of the record set to the model and returns
// the narrative text. The API key comes from the environment, as the genai
// client expects.
func (g *Generator) ProductionSummary(ctx context.Context, records []model.ProductionRecord) (string, error) {
	prompt := buildProductionPrompt(records)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("insights: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("insights: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("insights: empty response from model")
	}
	return text, nil
}
