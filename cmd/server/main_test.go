package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand(t *testing.T) {
	t.Setenv("WELCOME_DELAY", "300ms")

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"render", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	require.NoError(t, root.Execute())

	html := out.String()
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, `data-welcome-delay="300ms"`)
	assert.Contains(t, html, "Collect, trade, and celebrate sports history")
	assert.NotContains(t, html, "Welcome to Sportselling")
	assert.Equal(t, 4, strings.Count(html, "<article"))
}

func TestRenderCommand_BadConfig(t *testing.T) {
	t.Setenv("WELCOME_DELAY", "-1s")

	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	assert.ErrorContains(t, root.Execute(), "WELCOME_DELAY")
}
