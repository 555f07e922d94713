package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAI translates with a chat completion model.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(client *openai.Client, model string) *OpenAI {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{client: client, model: model}
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Translate(ctx context.Context, text, source, target string) (string, error) {
	instruction := fmt.Sprintf("You are a translation engine. Translate the user's text into the language with ISO code %q. Reply with the translation only, no quotes or notes.", target)
	if source != "" && source != AutoSource {
		instruction += fmt.Sprintf(" The source language has ISO code %q.", source)
	}

	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: instruction,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: text,
				},
			},
			Temperature: 0,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
