package ollama

// Config holds client configuration
type Config struct {
	Model   string
	BaseURL string
}

// Request is the generate request body
type Request struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Format string `json:"format,omitempty"` // "json" forces structured output
	Stream bool   `json:"stream"`

	Options *Options `json:"options,omitempty"`
}

// Options tunes model behavior
type Options struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// Response is the non-streaming generate response body
type Response struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

// ErrorResponse is the error body returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}
