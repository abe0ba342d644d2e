package simulated

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerate_NoMatches(t *testing.T) {
	p := New()

	answer, err := p.Generate(context.Background(), "what is this?", nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(answer, "Simulated generation for prompt") {
		t.Errorf("Missing simulation label: %q", answer)
	}
	if !strings.Contains(answer, "what is this?") {
		t.Errorf("Prompt lost from the answer: %q", answer)
	}
}

func TestGenerate_WithMatches(t *testing.T) {
	p := New()

	answer, err := p.Generate(context.Background(), "question", []string{"context chunk"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(answer, "simulated answer") {
		t.Errorf("Missing simulation label: %q", answer)
	}
	if !strings.Contains(answer, "context chunk") {
		t.Errorf("Context excerpt lost: %q", answer)
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 80)

	got := truncate(long, 50)
	if !utf8.ValidString(got) {
		t.Fatalf("Truncation produced invalid UTF-8: %q", got)
	}
	if n := len([]rune(got)); n != 50 {
		t.Errorf("Truncated to %d runes, want 50", n)
	}

	if truncate("short", 50) != "short" {
		t.Error("Short input must pass through unchanged")
	}
}

func TestGenerate_MultibytePromptStaysValid(t *testing.T) {
	p := New()
	prompt := strings.Repeat("日本語の長い質問です。", 20)

	answer, err := p.Generate(context.Background(), prompt, nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !utf8.ValidString(answer) {
		t.Errorf("Answer contains invalid UTF-8: %q", answer)
	}
}
