//go:build !wasm

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsoleForwardsToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	Log("mounted", 3)
	Warn("slow render")
	Error("Mount element not found for selector:", "#app")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "mounted 3", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Mount element not found for selector: #app", entries[2].Message)
	assert.Equal(t, "console", entries[2].LoggerName)
}

func TestConsoleNilLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.NotPanics(t, func() { Log("nothing listens") })
}
