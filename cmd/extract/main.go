// Command extract runs the action item pipeline from the command line:
// meeting notes in, a JSON, CSV or Markdown document out.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"meeting-action-extractor/internal/action"
	"meeting-action-extractor/internal/action/usecase"
	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/internal/ruleengine"
	"meeting-action-extractor/pkg/datemath"
	"meeting-action-extractor/pkg/format"
	"meeting-action-extractor/pkg/llmprovider"
	"meeting-action-extractor/pkg/log"
	"meeting-action-extractor/pkg/ollama"
	"meeting-action-extractor/pkg/openai"
)

func main() {
	var (
		inputPath   = flag.String("input", "-", "notes file to read, - for stdin")
		outputPath  = flag.String("output", "-", "file to write, - for stdout")
		providerArg = flag.String("provider", "regex", "extraction backend: regex, openai, or ollama")
		formatArg   = flag.String("format", "json", "output format: json, csv, or md")
		timezone    = flag.String("timezone", "UTC", "timezone for resolving deadlines")
		openaiModel = flag.String("openai-model", "", "OpenAI model (default "+openai.DefaultModel+")")
		ollamaURL   = flag.String("ollama-url", "", "Ollama base URL (default "+ollama.DefaultBaseURL+")")
		ollamaModel = flag.String("ollama-model", "", "Ollama model (default "+ollama.DefaultModel+")")
		timeout     = flag.Duration("timeout", 60*time.Second, "overall extraction timeout")
	)
	flag.Parse()

	if err := run(*inputPath, *outputPath, *providerArg, *formatArg, *timezone,
		*openaiModel, *ollamaURL, *ollamaModel, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "extract:", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath, providerArg, formatArg, timezone,
	openaiModel, ollamaURL, ollamaModel string, timeout time.Duration) error {

	outFormat, err := format.Parse(formatArg)
	if err != nil {
		return err
	}

	provider := model.Provider(providerArg)
	if !provider.Valid() {
		return fmt.Errorf("unknown provider %q (want regex, openai, or ollama)", providerArg)
	}

	notes, err := readInput(inputPath)
	if err != nil {
		return err
	}

	logger := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "console"})

	parser, err := datemath.NewParser(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	llmManager, err := buildLLMManager(provider, openaiModel, ollamaURL, ollamaModel, logger)
	if err != nil {
		return err
	}

	uc := usecase.New(logger, ruleengine.New(), llmManager, nil, "", parser, timezone, 0)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	extractOut, err := uc.Extract(ctx, model.Scope{}, action.ExtractInput{
		Notes:    string(notes),
		Provider: provider,
	})
	if err != nil {
		return err
	}

	exportOut, err := uc.Export(ctx, model.Scope{}, action.ExportInput{
		Items:  extractOut.Items,
		Format: outFormat,
	})
	if err != nil {
		return err
	}

	return writeOutput(outputPath, exportOut.Data)
}

// buildLLMManager wires the requested LLM backend, or nothing for regex.
// The OpenAI key comes from the OPENAI_API_KEY environment variable.
func buildLLMManager(provider model.Provider, openaiModel, ollamaURL, ollamaModel string, logger log.Logger) (*llmprovider.Manager, error) {
	var p llmprovider.Provider

	switch provider {
	case model.ProviderRegex:
		return nil, nil

	case model.ProviderOpenAI:
		client, err := openai.New(openai.Config{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  openaiModel,
		})
		if err != nil {
			return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", err)
		}
		p = llmprovider.NewOpenAIAdapter(client)

	case model.ProviderOllama:
		client, err := ollama.New(ollama.Config{
			BaseURL: ollamaURL,
			Model:   ollamaModel,
		})
		if err != nil {
			return nil, fmt.Errorf("ollama: %w", err)
		}
		p = llmprovider.NewOllamaAdapter(client)
	}

	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		RetryAttempts: 2,
		RetryDelay:    time.Second,
	}, logger), nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
