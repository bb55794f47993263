//go:build !wasm
// +build !wasm

package console

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// Native builds have no browser console. Messages go to a zap logger so that
// component code shared with the prerender server logs alongside it.

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger routes console output to l. A nil logger silences it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("console"))
}

// Log writes at info level.
func Log(args ...any) {
	logger.Load().Info(join(args))
}

// Warn writes at warn level.
func Warn(args ...any) {
	logger.Load().Warn(join(args))
}

// Error writes at error level.
func Error(args ...any) {
	logger.Load().Error(join(args))
}

// join mimics the browser console, which separates arguments with spaces.
func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
