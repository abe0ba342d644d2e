package simulated

import (
	"context"
	"fmt"
	"strings"
)

// Provider stands in when no LLM credentials are configured. Answers are
// clearly labeled as simulated so demos and tests keep working end to end.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string { return "simulated" }

func (p *Provider) Generate(ctx context.Context, userQuery string, matches []string) (string, error) {
	if len(matches) == 0 {
		return fmt.Sprintf(
			"Simulated generation for prompt: %s... (Please configure OPENAI_API_KEY or GEMINI_API_KEY)",
			truncate(userQuery, 50)), nil
	}

	excerpt := truncate(strings.Join(matches, "\n\n"), 200)
	return fmt.Sprintf(
		"No LLM provider is configured. Here is a simulated answer based on the context:\n\n%s...\n\n"+
			"(Please configure OPENAI_API_KEY or GEMINI_API_KEY for real AI responses)", excerpt), nil
}

// truncate limits s to limit characters, never cutting a rune in half.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
