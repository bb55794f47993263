// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"sync"

	"github.com/sportselling/landing/runtime"
	"github.com/sportselling/landing/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Drive the mount/unmount lifecycle the browser renderer would
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
//
// Re-renders may arrive from timer goroutines, so access is synchronized.
type TestRenderer struct {
	mu           sync.Mutex
	component    runtime.Component
	currentVDOM  *vdom.VNode
	mounted      bool
	unmounted    bool
	renders      int
	staleRenders int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs a render without running lifecycle hooks.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderLocked()
}

// Mount runs OnInit once, as the browser renderer does before the first
// render, and returns the initial tree.
func (r *TestRenderer) Mount() *vdom.VNode {
	r.mu.Lock()
	first := !r.mounted
	r.mounted = true
	r.mu.Unlock()

	if first {
		if initializer, ok := r.component.(runtime.Initializer); ok {
			initializer.OnInit()
		}
	}
	return r.RenderRoot()
}

// Unmount runs OnDestroy and drops the rendered tree. Any ReRender that
// arrives afterwards is counted as stale instead of rendering.
func (r *TestRenderer) Unmount() {
	r.mu.Lock()
	if r.unmounted {
		r.mu.Unlock()
		return
	}
	r.unmounted = true
	r.currentVDOM = nil
	r.mu.Unlock()

	if cleaner, ok := r.component.(runtime.Cleaner); ok {
		cleaner.OnDestroy()
	}
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unmounted {
		r.staleRenders++
		return
	}
	r.renderLocked()
}

func (r *TestRenderer) renderLocked() *vdom.VNode {
	if receiver, ok := r.component.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	r.currentVDOM = r.component.Render(r)
	r.renders++
	return r.currentVDOM
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentVDOM
}

// RenderCount reports how many renders have completed.
func (r *TestRenderer) RenderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// StaleRenders reports how many re-renders were requested after Unmount.
func (r *TestRenderer) StaleRenders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.staleRenders
}

// RenderChild renders a child in place. Children are rebuilt on every render;
// tests that need instance reuse exercise the browser renderer instead.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	if receiver, ok := child.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	n := child.Render(r)
	if n != nil {
		n.ComponentKey = key
	}
	return n
}
