package utils

import (
	"context"
	"strings"
)

// TextGeneratorInterface sends one system instruction and one user prompt to a
// text generation model and returns the raw text of its reply.
type TextGeneratorInterface interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
	Provider() string
}

// CleanJSONString removes markdown code fences (```json ... ```) models sometimes
// wrap around JSON output.
func CleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```JSON")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
