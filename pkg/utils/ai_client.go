package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StructuredRequest describes one structured chat-completion call. Model,
// Temperature and TopP are optional overrides; the client supplies defaults.
type StructuredRequest struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
	Temperature  *float32
	TopP         *float32
}

// AIClientInterface is implemented by the OpenAI and Gemini clients. The call
// is a single attempt, fail-fast: no retries happen at this layer. The
// response body is parsed as JSON into out and checked against out's
// validate tags; any mismatch is reported as ErrAIResponseInvalid.
type AIClientInterface interface {
	GetStructuredResponse(ctx context.Context, req StructuredRequest, out any) error
}

func decodeStructured(v *validator.Validate, content string, out any) error {
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("%w: failed to parse: %v", ErrAIResponseInvalid, err)
	}
	if err := v.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrAIResponseInvalid, err)
	}
	return nil
}
