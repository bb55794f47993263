//go:build js || wasm
// +build js wasm

package main

import (
	"time"

	"github.com/sportselling/landing/components/landing"
	"github.com/sportselling/landing/console"
	"github.com/sportselling/landing/runtime"
	"github.com/sportselling/landing/shell"
	"github.com/sportselling/landing/vdom"
)

func main() {
	mount := "#" + shell.MountID

	delay := landing.DefaultDelay
	if raw := vdom.MountAttr(mount, "data-welcome-delay"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			console.Warn("Ignoring invalid data-welcome-delay:", raw)
		} else {
			delay = d
		}
	}

	renderer := runtime.NewRenderer(mount)
	renderer.SetCurrentComponent(landing.New(landing.WithDelay(delay)), "landing")
	renderer.ReRender()

	// Keep the Go program alive so timers and click handlers keep running.
	select {}
}
