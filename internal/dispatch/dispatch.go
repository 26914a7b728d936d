// Package dispatch invokes registered transforms on behalf of the shell and
// the one-shot commands, tagging each call with an operation ID for logging.
package dispatch

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/cipherium-go/internal/encryption"
	apperrors "github.com/cipherium-go/internal/errors"
	"github.com/cipherium-go/internal/trace"
)

// Invoke runs op over message. Message and key contents are never logged.
func Invoke(ctx context.Context, op encryption.OpType, message string, p encryption.Params) (string, error) {
	if trace.GetOpID(ctx) == "" {
		ctx = trace.WithOpID(ctx, trace.GenerateOpID())
	}
	logger := trace.Logger(ctx)
	prefix := trace.LogPrefix(ctx, string(op))

	start := time.Now()
	out, err := encryption.Apply(op, message, p)
	if err != nil {
		logger.Warn().
			Str("op", string(op)).
			Str("kind", string(apperrors.KindOf(err))).
			Err(err).
			Msgf("%s transform failed", prefix)
		return "", err
	}

	logger.Debug().
		Str("op", string(op)).
		Int("input_chars", utf8.RuneCountInString(message)).
		Int("output_chars", utf8.RuneCountInString(out)).
		Dur("took", time.Since(start)).
		Msgf("%s transform applied", prefix)
	return out, nil
}
