package ollama

import "context"

// IOllama defines the interface for the Ollama generate client
type IOllama interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
}
