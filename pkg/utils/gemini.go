package utils

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client   *genai.Client
	model    string
	validate *validator.Validate
}

func NewGeminiClient(apiKey, model string) (AIClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:   client,
		model:    model,
		validate: validator.New(),
	}, nil
}

func (c *GeminiClient) GetStructuredResponse(ctx context.Context, req StructuredRequest, out any) error {
	name := req.Model
	if name == "" {
		name = c.model
	}

	m := c.client.GenerativeModel(name)
	// Force JSON-only output, same contract as the OpenAI json_object mode.
	m.ResponseMIMEType = "application/json"
	m.SetMaxOutputTokens(4096)
	if req.Temperature != nil {
		m.SetTemperature(*req.Temperature)
	}
	if req.TopP != nil {
		m.SetTopP(*req.TopP)
	}
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(req.UserPrompt))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("%w: invalid response structure", ErrAIResponseInvalid)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return decodeStructured(c.validate, content, out)
}
