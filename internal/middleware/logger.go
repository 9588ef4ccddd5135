package middleware

import (
	"time"

	"go.uber.org/zap"
)

// Handler is a console command handler: it takes the raw argument string
// and returns the text to print or an error to report.
type Handler func(args string) (string, error)

// Logger returns a middleware that logs executed console commands using zap.
// It logs the command name, duration, and outcome for each invocation.
func Logger(logger *zap.Logger) func(command string, next Handler) Handler {
	return func(command string, next Handler) Handler {
		return func(args string) (string, error) {
			start := time.Now()

			output, err := next(args)

			logger.Info("console command",
				zap.String("command", command),
				zap.Duration("duration", time.Since(start)),
				zap.Bool("ok", err == nil),
			)

			return output, err
		}
	}
}
