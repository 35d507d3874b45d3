package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client   *openai.Client
	model    string
	validate *validator.Validate
}

// NewOpenAIClient wraps a chat-completion endpoint. baseURL is optional and
// allows pointing at OpenAI-compatible providers.
func NewOpenAIClient(apiKey, model, baseURL string) AIClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIClient{
		client:   openai.NewClientWithConfig(cfg),
		model:    model,
		validate: validator.New(),
	}
}

func (c *OpenAIClient) GetStructuredResponse(ctx context.Context, req StructuredRequest, out any) error {
	model := req.Model
	if model == "" {
		model = c.model
	}

	completion := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		// Generous ceiling so JSON output is never truncated mid-document.
		MaxTokens: 4096,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if req.Temperature != nil {
		completion.Temperature = *req.Temperature
	}
	if req.TopP != nil {
		completion.TopP = *req.TopP
	}

	resp, err := c.client.CreateChatCompletion(ctx, completion)
	if err != nil {
		return mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return fmt.Errorf("%w: invalid response structure", ErrAIResponseInvalid)
	}

	return decodeStructured(c.validate, resp.Choices[0].Message.Content, out)
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return mapAIStatus(apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return mapAIStatus(reqErr.HTTPStatusCode, reqErr.Error())
	}

	// No HTTP response at all.
	return fmt.Errorf("%w: %v", ErrAIConnection, err)
}

func mapAIStatus(status int, message string) error {
	switch {
	case status == 401:
		return ErrAIInvalidKey
	case status == 429:
		return ErrAIRateLimited
	case status == 400:
		return ErrAIBadRequest
	case status >= 500:
		return ErrAIUnavailable
	default:
		return fmt.Errorf("%w: status %d: %s", ErrAIServiceError, status, message)
	}
}
