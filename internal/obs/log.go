// Package obs holds the ambient logging and metrics used by the
// cmd/sshaes-kat CLI. It is not imported by package aes or package
// sshcipher: block and mode operations stay allocation-free and
// log-free on the hot path (spec.md §5).
package obs

import "go.uber.org/zap"

// NewLogger builds the process-wide structured logger. Production builds
// use JSON output; callers that want human-readable output during
// development can call NewDevelopmentLogger instead.
func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		// zap.NewProduction only fails if its default config cannot open
		// its sinks, which for the built-in stderr sink cannot happen.
		panic(err)
	}
	return l
}

// NewDevelopmentLogger builds a human-readable, caller-annotated logger suited
// to the CLI's interactive use.
func NewDevelopmentLogger() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return l
}
