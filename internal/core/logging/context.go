package logging

import "context"

type contextKey string

const (
	scenarioKey contextKey = "scenario"
	commandKey  contextKey = "command"
)

// WithScenario adds the scenario file path to the context.
func WithScenario(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, scenarioKey, path)
}

// WithCommand adds the running CLI command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetScenario retrieves the scenario path from the context.
// Returns empty string if not present.
func GetScenario(ctx context.Context) string {
	if v, ok := ctx.Value(scenarioKey).(string); ok {
		return v
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}
