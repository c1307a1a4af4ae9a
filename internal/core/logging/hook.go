package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts scenario and command from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if scenario := GetScenario(ctx); scenario != "" {
		e.Str("scenario", scenario)
	}

	if command := GetCommand(ctx); command != "" {
		e.Str("command", command)
	}
}
