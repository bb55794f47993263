//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

import (
	"fmt"

	"github.com/sportselling/landing/console"
)

// In production builds lifecycle panics are recovered and logged so one
// faulty component cannot take the page down.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnParametersSet", key)
	receiver.OnParametersSet()
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer recoverLifecycle("OnDestroy", key)
	cleaner.OnDestroy()
}

func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("%s panic in component %s: %v", hook, key, rec))
	}
}
