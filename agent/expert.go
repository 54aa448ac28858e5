package agent

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// maxCalls bounds the function call round trips of a single question.
const maxCalls = 8

// ErrNoAnswer is returned when the model ends a turn without any text.
var ErrNoAnswer = errors.New("no answer")

// Expert is a chat with a model that has been given a role and, optionally,
// functions to call.
type Expert struct {
	Name      string                       `json:"name"`
	ModelName string                       `json:"model_name"`
	Config    *genai.GenerateContentConfig `json:"config"`
	Library   Library
	chat      *genai.Chat
}

// Start opens the chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("starting %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Ask sends parts and returns the expert's text answer. Function calls made
// by the model are answered from the Library until it answers in plain text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	if e.chat == nil {
		return "", fmt.Errorf("%s: chat not started", e.Name)
	}
	for range maxCalls {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			return "", fmt.Errorf("%s: %w", e.Name, ErrNoAnswer)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			text := resp.Text()
			if text == "" {
				return "", fmt.Errorf("%s: %w", e.Name, ErrNoAnswer)
			}
			return text, nil
		}
		if e.Library == nil {
			return "", fmt.Errorf("%s doesn't know how to make function calls", e.Name)
		}
		parts = nil
		for _, call := range calls {
			parts = append(parts, &genai.Part{FunctionResponse: e.Library(ctx, call)})
		}
	}
	return "", fmt.Errorf("%s: too many function calls", e.Name)
}
