package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meeting-action-extractor/pkg/openai"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     openai.Config
		wantErr bool
	}{
		{
			name:    "missing API key",
			cfg:     openai.Config{},
			wantErr: true,
		},
		{
			name: "defaults applied",
			cfg:  openai.Config{APIKey: "sk-test"},
		},
		{
			name: "custom model and base URL",
			cfg:  openai.Config{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: "http://localhost:8080/v1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := openai.New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client == nil {
				t.Fatalf("expected client, got nil")
			}
		})
	}
}

func TestCreateChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("unexpected auth header: %s", auth)
		}

		var req openai.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "gpt-3.5-turbo" {
			t.Errorf("expected default model to be filled in, got %q", req.Model)
		}

		json.NewEncoder(w).Encode(openai.Response{
			ID: "chatcmpl-123",
			Choices: []openai.Choice{
				{Message: openai.Message{Role: "assistant", Content: `[{"task":"ship it"}]`}},
			},
			Usage: openai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		})
	}))
	defer server.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	resp, err := client.CreateChatCompletion(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("expected 1 choice, got %d", len(resp.Choices))
	}
	if resp.Choices[0].Message.Content != `[{"task":"ship it"}]` {
		t.Errorf("unexpected content: %s", resp.Choices[0].Message.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
}

func TestCreateChatCompletionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	client, _ := openai.New(openai.Config{APIKey: "sk-bad", BaseURL: server.URL})

	_, err := client.CreateChatCompletion(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: "user", Content: "hello"}},
	})
	if err == nil {
		t.Fatalf("expected error for 401 response")
	}
}
