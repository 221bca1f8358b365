package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiTextClient implements TextGeneratorInterface using Google's Gemini models.
type GeminiTextClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewGeminiTextClient(ctx context.Context, apiKey, model string, temperature float32) (*GeminiTextClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

func (c *GeminiTextClient) Provider() string {
	return "gemini"
}

func (c *GeminiTextClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	c.configure(m, system)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return geminiResponseText(resp)
}

// configure puts the model in JSON mode; the reply still goes through
// CleanJSONString upstream.
func (c *GeminiTextClient) configure(m *genai.GenerativeModel, system string) {
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(c.temperature)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
}

func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}

// geminiResponseText concatenates the text parts of the first candidate.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no response candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini: candidate has no text parts")
	}
	return sb.String(), nil
}
