package trace

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	opIDKey    contextKey = "op_id"
	sessionKey contextKey = "session"
)

// GenerateOpID generates a sortable operation ID in format "op-<ULID>"
func GenerateOpID() string {
	return "op-" + ulid.Make().String()
}

// WithOpID adds an operation ID to context
func WithOpID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, opIDKey, opID)
}

// GetOpID retrieves the operation ID from context
func GetOpID(ctx context.Context) string {
	if v, ok := ctx.Value(opIDKey).(string); ok {
		return v
	}
	return ""
}

// WithSession tags the context with the caller mode (shell, run, mix, super)
func WithSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession retrieves the session tag from context
func GetSession(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey).(string); ok {
		return v
	}
	return ""
}

// LogPrefix returns a formatted log prefix: "[op-xxx] [session] [op]"
func LogPrefix(ctx context.Context, operation string) string {
	opID := GetOpID(ctx)
	session := GetSession(ctx)
	if opID == "" {
		opID = "op-??????"
	}
	if session == "" {
		session = "-"
	}
	return "[" + opID + "] [" + session + "] [" + operation + "]"
}

// Logger returns the global logger annotated with the context's IDs
func Logger(ctx context.Context) zerolog.Logger {
	l := log.With()
	if id := GetOpID(ctx); id != "" {
		l = l.Str("op_id", id)
	}
	if s := GetSession(ctx); s != "" {
		l = l.Str("session", s)
	}
	return l.Logger()
}
