package usecase

import (
	"context"
	"crypto/sha256"
	"fmt"

	"meeting-action-extractor/internal/action"
	"meeting-action-extractor/internal/model"
)

// Extract parses meeting notes into structured action items.
// The rule engine path is total: it never fails, it just produces fewer
// items. The LLM path degrades to the rule engine on any provider error.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input action.ExtractInput) (action.ExtractOutput, error) {
	provider := input.Provider
	if provider == "" {
		provider = model.ProviderRegex
	}
	if !provider.Valid() {
		return action.ExtractOutput{}, action.ErrUnknownProvider
	}

	uc.l.Infof(ctx, "Extract: request=%s provider=%s input_length=%d", sc.RequestID, provider, len(input.Notes))

	key := cacheKey(provider, input.Notes)
	result, ok := uc.cache.Get(key)
	if ok {
		uc.l.Debugf(ctx, "Extract: cache hit request=%s provider=%s", sc.RequestID, provider)
	} else {
		result = uc.runExtraction(ctx, provider, input.Notes)
		uc.cache.Add(key, result)
	}

	out := action.ExtractOutput{
		Items:    result.Items,
		Count:    len(result.Items),
		Provider: result.Provider,
	}

	if input.SyncCalendar {
		out.CalendarEvents = uc.syncCalendar(ctx, sc, result.Items)
	}

	return out, nil
}

// runExtraction dispatches to the requested backend.
func (uc *implUseCase) runExtraction(ctx context.Context, provider model.Provider, notes string) cachedResult {
	if provider == model.ProviderRegex {
		return cachedResult{
			Items:    uc.engine.Extract(notes),
			Provider: model.ProviderRegex,
		}
	}

	items, actual, err := uc.extractWithLLM(ctx, notes)
	if err != nil {
		uc.l.Warnf(ctx, "Extract: LLM extraction failed, falling back to rule engine: %v", err)
		return cachedResult{
			Items:    uc.engine.Extract(notes),
			Provider: model.ProviderRegex,
		}
	}

	return cachedResult{Items: items, Provider: actual}
}

// cacheKey derives the cache key from the requested backend and input text.
func cacheKey(provider model.Provider, notes string) string {
	sum := sha256.Sum256([]byte(notes))
	return fmt.Sprintf("%s:%x", provider, sum)
}
