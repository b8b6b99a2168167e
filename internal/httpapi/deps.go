package httpapi

import (
	"go.uber.org/zap"

	"jobpulse/internal/dashboard"
	"jobpulse/internal/render"
)

type Deps struct {
	Logger *zap.Logger

	Dashboard *dashboard.Dashboard
	Renderer  *render.Renderer

	// nil disables rate limiting
	Limiter *ClientLimiter
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
