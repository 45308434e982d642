package genai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI is the chat-completions implementation of Client.
type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI constructs an OpenAI client for the given API key and model.
func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Generate sends the prompt as a single-turn chat completion and returns the
// raw text of the first choice.
func (c *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a professional travel planner. Reply with valid JSON only."),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("genai.OpenAI.Generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("genai.OpenAI.Generate: provider returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Client = (*OpenAI)(nil)
