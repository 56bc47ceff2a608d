package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/techconnect/backend/internal/domain"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// Suggest generates short conversation openers for the viewer to send to
// the partner at a networking event. Callers fall back to canned openers
// on any error.
func (c *GeminiClient) Suggest(ctx context.Context, viewer, partner *domain.Profile) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 4 short icebreaker messages for a professional networking event app.
		Sender role: %s, skills: %v, interests: %v
		Receiver role: %s, skills: %v, interests: %v

		Task: Create 4 distinct opening lines the sender could send the receiver.
		Keep each under 60 characters, friendly and professional.
		Focus on shared skills or interests when there are any.
		Output: JSON array of strings. Example: ["Hi...", "Hello..."]
	`,
		viewer.Role(), viewer.Skills, viewer.Interests,
		partner.Role(), partner.Skills, partner.Interests,
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate icebreakers: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return parseSuggestions(sb.String())
}

// parseSuggestions extracts the JSON array from the model output, which
// often arrives wrapped in a markdown code fence.
func parseSuggestions(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var suggestions []string
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}

	out := suggestions[:0]
	for _, s := range suggestions {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no suggestions generated")
	}
	return out, nil
}
