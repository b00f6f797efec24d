package llmprovider

import (
	"context"
	"fmt"

	"meeting-action-extractor/pkg/ollama"
	"meeting-action-extractor/pkg/openai"
)

// OpenAIAdapter adapts the OpenAI client to the Provider interface
type OpenAIAdapter struct {
	client *openai.Client
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client *openai.Client) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

func (a *OpenAIAdapter) Name() string {
	return "openai"
}

func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GenerateContent converts the normalized request to the chat completions
// format and normalizes the response back
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	var messages []openai.Message
	if req.SystemInstruction != "" {
		messages = append(messages, openai.Message{Role: "system", Content: req.SystemInstruction})
	}
	messages = append(messages, openai.Message{Role: "user", Content: req.Prompt})

	resp, err := a.client.CreateChatCompletion(ctx, &openai.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// OllamaAdapter adapts the Ollama client to the Provider interface
type OllamaAdapter struct {
	client *ollama.Client
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client *ollama.Client) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

func (a *OllamaAdapter) Name() string {
	return "ollama"
}

func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// GenerateContent converts the normalized request to the generate format
// and normalizes the response back
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	genReq := &ollama.Request{
		Prompt: req.Prompt,
		System: req.SystemInstruction,
	}
	if req.JSONOutput {
		genReq.Format = "json"
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		genReq.Options = &ollama.Options{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		}
	}

	resp, err := a.client.Generate(ctx, genReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	if !resp.Done {
		return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("incomplete generation")}
	}

	return &Response{
		Text:         resp.Response,
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}
