package middleware

import (
	"meeting-action-extractor/config"
	"meeting-action-extractor/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
