package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/pkg/llmprovider"
)

const extractionSystemInstruction = `You extract action items from meeting notes. ` +
	`Respond with a JSON array only, no prose. Each element has the fields: ` +
	`"assignee" (string or null), "task" (string), "due_date" (string or null, ` +
	`the deadline phrase exactly as written in the notes), "priority" ` +
	`("high", "medium" or "low") and "context" (the source sentence).`

// llmItem is the JSON shape expected from the LLM before normalization.
type llmItem struct {
	Assignee *string `json:"assignee"`
	Task     string  `json:"task"`
	DueDate  *string `json:"due_date"`
	Priority string  `json:"priority"`
	Context  string  `json:"context"`
}

// extractWithLLM sends the notes through the provider chain and returns
// normalized action items plus the backend that produced them.
func (uc *implUseCase) extractWithLLM(ctx context.Context, notes string) ([]model.ActionItem, model.Provider, error) {
	if uc.llm == nil {
		return nil, "", fmt.Errorf("no LLM providers configured")
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: extractionSystemInstruction,
		Prompt:            buildExtractionPrompt(notes),
		Temperature:       0.2, // low temperature for deterministic JSON output
		MaxTokens:         2048,
		JSONOutput:        true,
	})
	if err != nil {
		return nil, "", err
	}

	cleanedJSON := sanitizeJSONResponse(resp.Text)

	var raw []llmItem
	if err := json.Unmarshal([]byte(cleanedJSON), &raw); err != nil {
		uc.l.Errorf(ctx, "Failed to parse LLM response. Raw=%q Cleaned=%q", resp.Text, cleanedJSON)
		return nil, "", fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	return normalizeItems(raw), model.Provider(resp.ProviderName), nil
}

// buildExtractionPrompt wraps the notes for the user turn.
func buildExtractionPrompt(notes string) string {
	return fmt.Sprintf("Meeting notes:\n\n%s\n\nExtract the action items as a JSON array.", notes)
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// normalizeItems enforces the output contract on LLM-produced items.
// Items without a task are dropped, unknown priorities become medium,
// and empty assignee or due date strings become null.
func normalizeItems(raw []llmItem) []model.ActionItem {
	items := make([]model.ActionItem, 0, len(raw))
	for _, r := range raw {
		task := strings.TrimSpace(r.Task)
		if task == "" {
			continue
		}

		priority := model.Priority(strings.ToLower(strings.TrimSpace(r.Priority)))
		switch priority {
		case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		default:
			priority = model.PriorityMedium
		}

		items = append(items, model.ActionItem{
			Assignee: cleanOptional(r.Assignee),
			Task:     task,
			DueDate:  cleanOptional(r.DueDate),
			Priority: priority,
			Context:  strings.TrimSpace(r.Context),
		})
	}
	return items
}

// cleanOptional trims an optional string and collapses empties to nil.
func cleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
