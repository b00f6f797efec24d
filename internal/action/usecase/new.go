package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-action-extractor/internal/model"
	"meeting-action-extractor/internal/ruleengine"
	"meeting-action-extractor/pkg/datemath"
	"meeting-action-extractor/pkg/gcalendar"
	"meeting-action-extractor/pkg/llmprovider"
	pkgLog "meeting-action-extractor/pkg/log"
)

// cachedResult is what the extraction cache stores per (provider, notes) pair.
type cachedResult struct {
	Items    []model.ActionItem
	Provider model.Provider
}

type implUseCase struct {
	l          pkgLog.Logger
	engine     *ruleengine.Engine
	llm        *llmprovider.Manager // nil when no LLM providers are configured
	calendar   *gcalendar.Client    // nil when calendar sync is disabled
	calendarID string               // empty means the account's primary calendar
	dateMath   *datemath.Parser
	timezone   string
	cache      *lru.LRU[string, cachedResult]
}

// New creates a new action UseCase instance.
func New(
	l pkgLog.Logger,
	engine *ruleengine.Engine,
	llm *llmprovider.Manager,
	calendar *gcalendar.Client,
	calendarID string,
	dateMath *datemath.Parser,
	timezone string,
	cacheSize int,
) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = 256
	}
	return &implUseCase{
		l:          l,
		engine:     engine,
		llm:        llm,
		calendar:   calendar,
		calendarID: calendarID,
		dateMath:   dateMath,
		timezone:   timezone,
		cache:      lru.NewLRU[string, cachedResult](cacheSize, nil, 10*time.Minute),
	}
}
